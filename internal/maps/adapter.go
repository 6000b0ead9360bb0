// Package maps 지도 SDK가 소비할 뷰 모델을 만든다.
// 마커와 폴리라인은 항상 초안 순서대로 그려지고, 해석 실패한 주소는
// 마커 없이 건너뛴다. 선택/추가 인텐트는 옵저버로 전달되어
// 렌더링과 초안 변경 로직을 분리한다.
package maps

import (
	"context"
	"sync"

	"github.com/ArTrack-Service/artwalk/internal/geocode"
	"github.com/ArTrack-Service/artwalk/internal/model"
)

// Marker 지도 마커 하나. Order는 초안 내 순번(1부터)이다.
type Marker struct {
	Order      int              `json:"order"`
	ArtworkID  uint             `json:"id"`
	Name       string           `json:"name"`
	Coordinate model.Coordinate `json:"coordinate"`
}

// RouteView 경로 지도 뷰 — 번호 매긴 마커, 초안 순서의 폴리라인 경로,
// 해석된 좌표들의 무게중심, 구간 거리 합.
type RouteView struct {
	Markers   []Marker           `json:"markers"`
	Path      []model.Coordinate `json:"path"`
	Center    *model.Coordinate  `json:"center,omitempty"`
	DistanceM float64            `json:"distanceM"`
}

// Resolver 주소 일괄 해석기 (입력 순서 보존, 실패 자리는 nil)
type Resolver interface {
	ResolveBatch(ctx context.Context, addresses []string) []*model.Coordinate
}

// Adapter 지도 표현 어댑터
type Adapter struct {
	resolver Resolver

	mu       sync.Mutex
	onSelect []func(artworkID uint)
	onAdd    []func(item model.RouteItem)
}

// NewAdapter 어댑터 생성
func NewAdapter(r Resolver) *Adapter {
	return &Adapter{resolver: r}
}

// BuildRouteView 항목들을 좌표로 해석해 경로 뷰를 만든다.
// 주소 해석은 독립적으로 병렬 수행되며, 실패한 항목은 건너뛴다.
func (a *Adapter) BuildRouteView(ctx context.Context, items []model.RouteItem) RouteView {
	addresses := make([]string, 0, len(items))
	for _, item := range items {
		addresses = append(addresses, item.Address)
	}

	coords := a.resolver.ResolveBatch(ctx, addresses)

	view := RouteView{}
	order := 0
	var latSum, lngSum float64
	for i, coord := range coords {
		if coord == nil {
			continue
		}
		order++
		view.Markers = append(view.Markers, Marker{
			Order:      order,
			ArtworkID:  items[i].ArtworkID,
			Name:       items[i].Name,
			Coordinate: *coord,
		})
		view.Path = append(view.Path, *coord)
		latSum += coord.Lat
		lngSum += coord.Lng
	}

	if order > 0 {
		view.Center = &model.Coordinate{
			Lat: latSum / float64(order),
			Lng: lngSum / float64(order),
		}
	}
	view.DistanceM = geocode.PathDistance(view.Path)

	return view
}

// OnSelect 마커 선택(상세 보기) 옵저버 등록
func (a *Adapter) OnSelect(fn func(artworkID uint)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSelect = append(a.onSelect, fn)
}

// OnAdd 마커 인라인 추가 인텐트 옵저버 등록
func (a *Adapter) OnAdd(fn func(item model.RouteItem)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onAdd = append(a.onAdd, fn)
}

// Select 선택 이벤트 발행
func (a *Adapter) Select(artworkID uint) {
	a.mu.Lock()
	observers := append([]func(uint){}, a.onSelect...)
	a.mu.Unlock()

	for _, fn := range observers {
		fn(artworkID)
	}
}

// AddIntent 추가 인텐트 발행
func (a *Adapter) AddIntent(item model.RouteItem) {
	a.mu.Lock()
	observers := append([]func(model.RouteItem){}, a.onAdd...)
	a.mu.Unlock()

	for _, fn := range observers {
		fn(item)
	}
}
