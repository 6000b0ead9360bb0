package store

import (
	"time"

	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/logger"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// draftItem 경로 초안 한 행. position이 초안 내 순서를 보존한다.
type draftItem struct {
	ID        uint   `gorm:"primaryKey"`
	Position  int    `gorm:"column:position;not null;index"`
	ArtworkID uint   `gorm:"column:artwork_id;not null"`
	Name      string `gorm:"column:name;size:255"`
	Address   string `gorm:"column:address;type:text"`
	Category  string `gorm:"column:category;size:50"`
	Image     string `gorm:"column:image;type:text"`
}

func (draftItem) TableName() string {
	return "route_draft_items"
}

// GeocodeCache 지오코딩 캐시. 성능용 캐시일 뿐 정본이 아니므로
// 언제든 버려도 무방하다.
type GeocodeCache struct {
	ID        uint      `gorm:"primaryKey"`
	Address   string    `gorm:"size:500;not null;uniqueIndex"`
	Lat       float64   `gorm:"not null"`
	Lng       float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null"`
}

func (GeocodeCache) TableName() string {
	return "geocode_cache"
}

// Store 클라이언트 로컬 내구 저장소 (sqlite).
// 저장소 장애는 호출자에게 전파하지 않는다 — 로깅 후 무시하고,
// 읽기는 빈 상태로 degrade 한다.
type Store struct {
	db     *gorm.DB
	expiry time.Duration
}

// Open 로컬 저장소 열기. 실패해도 nil을 반환하지 않고
// 메모리 전용(no-op) 저장소로 계속 동작한다.
func Open(cfg config.StoreConfig, env string) *Store {
	log := logger.GetLogger("store")

	logLevel := gormlogger.Silent
	if env == "development" {
		logLevel = gormlogger.Warn
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Warnf("로컬 저장소 열기 실패 (메모리 전용으로 계속): %v", err)
		return &Store{expiry: cfg.GeocodeExpiry}
	}

	if err := db.Use(&MetricsPlugin{}); err != nil {
		log.Warnf("메트릭 플러그인 등록 실패: %v", err)
	}

	if err := db.AutoMigrate(&draftItem{}, &GeocodeCache{}); err != nil {
		log.Warnf("AutoMigrate warning (non-fatal): %v", err)
	}

	return &Store{db: db, expiry: cfg.GeocodeExpiry}
}

// Durable 내구 저장이 살아 있는지 여부.
// false면 메모리 전용으로 degrade 된 상태다.
func (s *Store) Durable() bool {
	return s != nil && s.db != nil
}

// SaveDraft 초안 전체를 저장 (기존 내용 대체).
// 실패는 로깅 후 무시 — 메모리의 초안은 그대로 유효하다.
func (s *Store) SaveDraft(items []model.RouteItem) {
	if s == nil || s.db == nil {
		return
	}
	log := logger.GetLogger("store")

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&draftItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]draftItem, 0, len(items))
		for i, item := range items {
			rows = append(rows, draftItem{
				Position:  i,
				ArtworkID: item.ArtworkID,
				Name:      item.Name,
				Address:   item.Address,
				Category:  string(item.Category),
				Image:     item.Image,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Warnf("초안 저장 실패 (무시): %v", err)
	}
}

// LoadDraft 저장된 초안 복원. 없거나 손상된 경우 빈 초안을 반환한다.
func (s *Store) LoadDraft() []model.RouteItem {
	if s == nil || s.db == nil {
		return nil
	}
	log := logger.GetLogger("store")

	var rows []draftItem
	if err := s.db.Order("position ASC").Find(&rows).Error; err != nil {
		log.Warnf("초안 복원 실패 (빈 초안으로 계속): %v", err)
		return nil
	}

	items := make([]model.RouteItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.RouteItem{
			ArtworkID: row.ArtworkID,
			Name:      row.Name,
			Address:   row.Address,
			Category:  model.Category(row.Category),
			Image:     row.Image,
		})
	}
	return items
}

// ClearDraft 초안 비우기
func (s *Store) ClearDraft() {
	s.SaveDraft(nil)
}

// GetGeocode 캐시된 좌표 조회. 만료된 항목은 miss로 처리한다.
func (s *Store) GetGeocode(address string) (model.Coordinate, bool) {
	if s == nil || s.db == nil {
		return model.Coordinate{}, false
	}

	var row GeocodeCache
	err := s.db.Where("address = ?", address).First(&row).Error
	if err != nil {
		return model.Coordinate{}, false
	}
	if !row.ExpiresAt.IsZero() && time.Now().After(row.ExpiresAt) {
		return model.Coordinate{}, false
	}
	return model.Coordinate{Lat: row.Lat, Lng: row.Lng}, true
}

// PutGeocode 좌표 캐시 저장 (동일 주소는 갱신)
func (s *Store) PutGeocode(address string, coord model.Coordinate) {
	if s == nil || s.db == nil {
		return
	}
	log := logger.GetLogger("store")

	row := GeocodeCache{
		Address:   address,
		Lat:       coord.Lat,
		Lng:       coord.Lng,
		ExpiresAt: time.Now().Add(s.expiry),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "expires_at"}),
	}).Create(&row).Error
	if err != nil {
		log.Warnf("지오코딩 캐시 저장 실패 (무시): %v", err)
	}
}
