package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// 로컬 저장소 쿼리 실행 시간
	storeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artwalk_store_query_duration_seconds",
			Help:    "Local store query execution time in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation", "table", "status"},
	)

	// 로컬 저장소 쿼리 실행 횟수
	storeQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwalk_store_query_total",
			Help: "Total number of local store queries",
		},
		[]string{"operation", "table", "status"},
	)

	// 로컬 저장소 에러 횟수
	storeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwalk_store_errors_total",
			Help: "Total number of local store errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// 느린 쿼리 횟수 (>1초)
	storeSlowQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artwalk_store_slow_queries_total",
			Help: "Total number of slow local store queries (>1 second)",
		},
		[]string{"operation", "table"},
	)
)

// MetricsPlugin GORM metrics plugin
type MetricsPlugin struct{}

// Name plugin name
func (p *MetricsPlugin) Name() string {
	return "metricsPlugin"
}

// Initialize plugin initialization
func (p *MetricsPlugin) Initialize(db *gorm.DB) error {
	_ = db.Callback().Create().Before("gorm:create").Register("metrics:before_create", beforeCallback)
	_ = db.Callback().Create().After("gorm:create").Register("metrics:after_create", afterCallback)

	_ = db.Callback().Query().Before("gorm:query").Register("metrics:before_query", beforeCallback)
	_ = db.Callback().Query().After("gorm:query").Register("metrics:after_query", afterCallback)

	_ = db.Callback().Update().Before("gorm:update").Register("metrics:before_update", beforeCallback)
	_ = db.Callback().Update().After("gorm:update").Register("metrics:after_update", afterCallback)

	_ = db.Callback().Delete().Before("gorm:delete").Register("metrics:before_delete", beforeCallback)
	_ = db.Callback().Delete().After("gorm:delete").Register("metrics:after_delete", afterCallback)

	_ = db.Callback().Raw().Before("gorm:raw").Register("metrics:before_raw", beforeCallback)
	_ = db.Callback().Raw().After("gorm:raw").Register("metrics:after_raw", afterCallback)

	return nil
}

// beforeCallback 쿼리 실행 전 콜백
func beforeCallback(db *gorm.DB) {
	db.InstanceSet("metrics:start_time", time.Now())
}

// afterCallback 쿼리 실행 후 콜백
func afterCallback(db *gorm.DB) {
	startTime, ok := db.InstanceGet("metrics:start_time")
	if !ok {
		return
	}

	duration := time.Since(startTime.(time.Time)).Seconds()
	operation := getOperation(db)
	table := db.Statement.Table
	if table == "" {
		table = "unknown"
	}

	status := "success"
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		status = "error"
	}

	storeQueryDuration.WithLabelValues(operation, table, status).Observe(duration)
	storeQueryTotal.WithLabelValues(operation, table, status).Inc()

	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		storeErrorsTotal.WithLabelValues(operation, table, fmt.Sprintf("%T", db.Error)).Inc()
	}

	if duration > 1.0 {
		storeSlowQueriesTotal.WithLabelValues(operation, table).Inc()
	}
}

// getOperation 쿼리 operation 타입 추출
func getOperation(db *gorm.DB) string {
	sql := db.Statement.SQL.String()
	if len(sql) >= 6 {
		switch sql[:6] {
		case "SELECT", "select":
			return "SELECT"
		case "INSERT", "insert":
			return "INSERT"
		case "UPDATE", "update":
			return "UPDATE"
		case "DELETE", "delete":
			return "DELETE"
		}
	}
	return "UNKNOWN"
}

// UpdateConnectionPoolMetrics connection pool 메트릭 업데이트 (주기적 호출)
func UpdateConnectionPoolMetrics(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	stats := sqlDB.Stats()
	storeConnectionPoolIdle.Set(float64(stats.Idle))
	storeConnectionPoolInUse.Set(float64(stats.InUse))
}

var (
	storeConnectionPoolIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artwalk_store_connection_pool_idle",
			Help: "Number of idle local store connections",
		},
	)
	storeConnectionPoolInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artwalk_store_connection_pool_in_use",
			Help: "Number of local store connections currently in use",
		},
	)
)

// StartConnectionPoolMetricsCollector connection pool 메트릭 수집 시작 (백그라운드)
func (s *Store) StartConnectionPoolMetricsCollector(ctx context.Context, interval time.Duration) {
	if s == nil || s.db == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			UpdateConnectionPoolMetrics(s.db)
		}
	}
}
