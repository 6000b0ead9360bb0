package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	// HTTPRequestsTotal HTTP 요청 수
	HTTPRequestsTotal metric.Int64Counter
	// HTTPRequestDuration HTTP 요청 처리 시간
	HTTPRequestDuration metric.Float64Histogram
	// HTTPActiveRequests 처리 중인 HTTP 요청 수
	HTTPActiveRequests metric.Int64UpDownCounter
	// GeocodeLookupsTotal 지오코딩 조회 수 (cache hit/miss 라벨)
	GeocodeLookupsTotal metric.Int64Counter
)

// initMetrics 메트릭 인스트루먼트 생성
func initMetrics(serviceName string) error {
	meter := otel.GetMeterProvider().Meter(serviceName)

	var err error

	HTTPRequestsTotal, err = meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return err
	}

	HTTPRequestDuration, err = meter.Float64Histogram(
		"http.server.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	HTTPActiveRequests, err = meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return err
	}

	GeocodeLookupsTotal, err = meter.Int64Counter(
		"geocode.lookups",
		metric.WithDescription("Total number of geocode lookups"),
	)
	if err != nil {
		return err
	}

	return nil
}
