package model

import "time"

// RouteItem 경로 초안의 한 항목.
// 오프라인 렌더링을 위해 표시 필드를 비정규화해서 들고 다닌다.
type RouteItem struct {
	ArtworkID uint     `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Category  Category `json:"type,omitempty"`
	Image     string   `json:"image,omitempty"`
}

// RouteItemOf 작품에서 경로 항목 생성
func RouteItemOf(a Artwork) RouteItem {
	return RouteItem{
		ArtworkID: a.ID,
		Name:      a.Name,
		Address:   a.Address,
		Category:  a.Category,
		Image:     a.Image,
	}
}

// Course 백엔드에 저장된 산책 코스 (RouteDraft의 확정 형태)
type Course struct {
	ID          uint      `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Points      []uint    `json:"points"`
	CanShare    bool      `json:"canShare"`
	Time        *float64  `json:"time,omitempty"` // 소요 시간 (분)
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Coordinate 위경도 좌표
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
