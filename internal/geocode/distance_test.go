package geocode

import (
	"math"
	"testing"

	"github.com/ArTrack-Service/artwalk/internal/model"
)

// TestHaversine 서울시청-광화문 구간 거리 검증 (약 1km)
func TestHaversine(t *testing.T) {
	// 서울시청 → 광화문
	d := Haversine(37.5665, 126.9780, 37.5759, 126.9769)
	if d < 900 || d > 1200 {
		t.Errorf("Expected roughly 1km, got %.0fm", d)
	}

	// 같은 지점은 0
	if d := Haversine(37.5665, 126.9780, 37.5665, 126.9780); d != 0 {
		t.Errorf("Expected 0 for identical points, got %f", d)
	}
}

// TestPathDistance 경로 거리는 구간 거리의 합이다
func TestPathDistance(t *testing.T) {
	a := model.Coordinate{Lat: 37.5665, Lng: 126.9780}
	b := model.Coordinate{Lat: 37.5700, Lng: 126.9800}
	c := model.Coordinate{Lat: 37.5759, Lng: 126.9769}

	total := PathDistance([]model.Coordinate{a, b, c})
	sum := Haversine(a.Lat, a.Lng, b.Lat, b.Lng) + Haversine(b.Lat, b.Lng, c.Lat, c.Lng)

	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("Expected %f, got %f", sum, total)
	}

	// 점이 1개 이하면 0
	if d := PathDistance([]model.Coordinate{a}); d != 0 {
		t.Errorf("Expected 0 for single point, got %f", d)
	}
	if d := PathDistance(nil); d != 0 {
		t.Errorf("Expected 0 for empty path, got %f", d)
	}
}
