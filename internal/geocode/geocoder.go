// Package geocode 네이버 Geocode API로 주소를 위경도로 변환한다.
// 결과는 로컬 캐시에 저장되며, 해석 실패한 주소는 조용히 건너뛴다 —
// 해당 포인트의 마커만 빠질 뿐 나머지 렌더링을 막지 않는다.
package geocode

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/logger"
	"github.com/ArTrack-Service/artwalk/internal/model"
)

const (
	// defaultAPIURL 네이버 Geocode API 엔드포인트
	defaultAPIURL = "https://maps.apigw.ntruss.com/map-geocode/v2/geocode"
	// maxRetries 429 수신 시 최대 재시도 횟수
	maxRetries = 3
	// backoffFactor 지수 백오프 계수(초)
	backoffFactor = 1.0
)

// Cache 좌표 캐시. 정본이 아니므로 miss여도 동작에는 지장이 없다.
type Cache interface {
	GetGeocode(address string) (model.Coordinate, bool)
	PutGeocode(address string, coord model.Coordinate)
}

// Geocoder 네이버 Geocode API 클라이언트 (캐시 경유)
type Geocoder struct {
	cfg        config.NaverAPIConfig
	cache      Cache
	httpClient *http.Client
	apiURL     string
}

// New 새 Geocoder 생성. cache는 nil이어도 된다(캐시 없이 동작).
func New(cfg config.NaverAPIConfig, cache Cache) *Geocoder {
	return &Geocoder{
		cfg:   cfg,
		cache: cache,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: defaultAPIURL,
	}
}

// Resolve 주소 하나를 좌표로 해석. 캐시 hit이면 API를 호출하지 않는다.
func (g *Geocoder) Resolve(ctx context.Context, address string) (model.Coordinate, bool) {
	if address == "" {
		return model.Coordinate{}, false
	}

	if g.cache != nil {
		if coord, ok := g.cache.GetGeocode(address); ok {
			return coord, true
		}
	}

	lat, lng, found := g.geocode(ctx, address)
	if !found {
		return model.Coordinate{}, false
	}

	coord := model.Coordinate{Lat: lat, Lng: lng}
	if g.cache != nil {
		g.cache.PutGeocode(address, coord)
	}
	return coord, true
}

// ResolveBatch 여러 주소를 독립적으로 동시에 해석한다.
// 하나가 느리거나 실패해도 다른 주소를 막지 않으며, 결과 슬라이스는
// 입력 순서를 보존하고 해석 실패 자리는 nil이다.
func (g *Geocoder) ResolveBatch(ctx context.Context, addresses []string) []*model.Coordinate {
	results := make([]*model.Coordinate, len(addresses))

	var wg sync.WaitGroup
	for i, address := range addresses {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()
			if coord, ok := g.Resolve(ctx, address); ok {
				results[i] = &coord
			}
		}(i, address)
	}
	wg.Wait()

	return results
}

// geocode 네이버 Geocode API 호출 (429 지수 백오프)
func (g *Geocoder) geocode(ctx context.Context, address string) (lat, lng float64, found bool) {
	log := logger.GetLogger("geocode")

	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiURL, nil)
		if err != nil {
			log.Warnf("Geocode 요청 생성 실패: %v", err)
			return 0, 0, false
		}

		q := req.URL.Query()
		q.Add("query", address)
		req.URL.RawQuery = q.Encode()

		req.Header.Set("x-ncp-apigw-api-key-id", g.cfg.MapClientID)
		req.Header.Set("x-ncp-apigw-api-key", g.cfg.MapClientSecret)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			log.Warnf("Geocode 실패 (%s): %v", address, err)
			return 0, 0, false
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			waitTime := backoffFactor * math.Pow(2, float64(attempt))
			log.Warnf("Geocode API 쿼터 초과 (%s). %.0f초 후 재시도... (%d/%d)",
				address, waitTime, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return 0, 0, false
			case <-time.After(time.Duration(waitTime) * time.Second):
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Warnf("Geocode 실패 (%s): status=%d", address, resp.StatusCode)
			return 0, 0, false
		}

		var result model.NaverGeocodeResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			log.Warnf("Geocode 응답 파싱 실패: %v", err)
			return 0, 0, false
		}
		resp.Body.Close()

		if len(result.Addresses) == 0 {
			return 0, 0, false
		}

		lat, err = strconv.ParseFloat(result.Addresses[0].Y, 64)
		if err != nil {
			return 0, 0, false
		}
		lng, err = strconv.ParseFloat(result.Addresses[0].X, 64)
		if err != nil {
			return 0, 0, false
		}

		return lat, lng, true
	}

	log.Errorf("Geocode API 모든 재시도 실패 (%s)", address)
	return 0, 0, false
}
