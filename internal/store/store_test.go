package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/model"
)

func openTestStore(t *testing.T, expiry time.Duration) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artwalk_test.db")
	s := Open(config.StoreConfig{Path: path, GeocodeExpiry: expiry}, "test")
	if !s.Durable() {
		t.Fatal("Expected durable test store")
	}
	return s, path
}

// TestDraftRoundTrip 초안이 재시작(재오픈) 후에도 순서대로 복원된다
func TestDraftRoundTrip(t *testing.T) {
	s, path := openTestStore(t, time.Hour)

	items := []model.RouteItem{
		{ArtworkID: 3, Name: "동상", Address: "서울 중구", Category: model.CategoryStatue},
		{ArtworkID: 1, Name: "벽화", Address: "서울 종로구", Category: model.CategoryPublicArt},
	}
	s.SaveDraft(items)

	// 같은 파일로 다시 열어 복원 확인
	s2 := Open(config.StoreConfig{Path: path, GeocodeExpiry: time.Hour}, "test")
	restored := s2.LoadDraft()

	if len(restored) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(restored))
	}
	if restored[0].ArtworkID != 3 || restored[1].ArtworkID != 1 {
		t.Errorf("Expected order [3 1], got [%d %d]", restored[0].ArtworkID, restored[1].ArtworkID)
	}
	if restored[1].Category != model.CategoryPublicArt {
		t.Errorf("Expected category preserved, got %s", restored[1].Category)
	}
}

// TestSaveDraftReplaces 저장은 기존 초안을 통째로 대체한다
func TestSaveDraftReplaces(t *testing.T) {
	s, _ := openTestStore(t, time.Hour)

	s.SaveDraft([]model.RouteItem{{ArtworkID: 1}, {ArtworkID: 2}})
	s.SaveDraft([]model.RouteItem{{ArtworkID: 9}})

	restored := s.LoadDraft()
	if len(restored) != 1 || restored[0].ArtworkID != 9 {
		t.Errorf("Expected [9], got %+v", restored)
	}

	s.ClearDraft()
	if restored := s.LoadDraft(); len(restored) != 0 {
		t.Errorf("Expected empty draft after clear, got %d items", len(restored))
	}
}

// TestOpenFailSoft 저장소를 열 수 없어도 앱은 죽지 않는다
func TestOpenFailSoft(t *testing.T) {
	s := Open(config.StoreConfig{Path: "/nonexistent-dir/no/such/place.db", GeocodeExpiry: time.Hour}, "test")

	if s == nil {
		t.Fatal("Expected non-nil store even when open fails")
	}
	if s.Durable() {
		t.Error("Expected memory-only store for unopenable path")
	}

	// 모든 연산이 no-op으로 안전하게 동작한다
	s.SaveDraft([]model.RouteItem{{ArtworkID: 1}})
	if items := s.LoadDraft(); items != nil {
		t.Errorf("Expected nil draft from memory-only store, got %v", items)
	}
	s.PutGeocode("주소", model.Coordinate{Lat: 1, Lng: 2})
	if _, ok := s.GetGeocode("주소"); ok {
		t.Error("Expected geocode miss from memory-only store")
	}
}

// TestGeocodeCache 좌표 캐시 저장/조회/갱신
func TestGeocodeCache(t *testing.T) {
	s, _ := openTestStore(t, time.Hour)

	addr := "서울특별시 종로구 세종대로 175"
	s.PutGeocode(addr, model.Coordinate{Lat: 37.5724, Lng: 126.9769})

	coord, ok := s.GetGeocode(addr)
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if coord.Lat != 37.5724 || coord.Lng != 126.9769 {
		t.Errorf("Unexpected coordinate: %+v", coord)
	}

	// 같은 주소 재저장은 갱신이다
	s.PutGeocode(addr, model.Coordinate{Lat: 37.0, Lng: 127.0})
	coord, ok = s.GetGeocode(addr)
	if !ok || coord.Lat != 37.0 {
		t.Errorf("Expected updated coordinate, got %+v (hit=%v)", coord, ok)
	}

	if _, ok := s.GetGeocode("없는 주소"); ok {
		t.Error("Expected miss for unknown address")
	}
}

// TestGeocodeCacheExpiry 만료된 캐시는 miss로 처리된다
func TestGeocodeCacheExpiry(t *testing.T) {
	s, _ := openTestStore(t, -time.Minute) // 저장 즉시 만료

	s.PutGeocode("주소", model.Coordinate{Lat: 37.5, Lng: 127.0})
	if _, ok := s.GetGeocode("주소"); ok {
		t.Error("Expected expired entry to be a miss")
	}
}
