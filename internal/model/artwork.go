package model

// Category 예술작품 분류 코드 (백엔드 코드가 정본)
type Category string

const (
	CategoryPublicArt Category = "publicArt"
	CategoryGallery   Category = "gallery"
	CategorySculpture Category = "sculpture"
	CategoryStatue    Category = "statue"
)

// CategoryLabels 화면 표시용 한글 라벨 테이블
var CategoryLabels = map[Category]string{
	CategoryPublicArt: "공공미술",
	CategoryGallery:   "갤러리",
	CategorySculpture: "조각",
	CategoryStatue:    "동상",
}

// Valid 알려진 분류 코드인지 확인
func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Label 표시용 라벨 반환 (미지정 코드는 코드 그대로)
func (c Category) Label() string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Artwork 예술작품 (지도에 표시되는 포인트)
// 경로 빌더 입장에서는 읽기 전용이며 항상 ID로만 참조한다.
type Artwork struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Category    Category `json:"type"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Year        *int     `json:"year,omitempty"`
}
