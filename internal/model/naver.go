package model

// NaverGeocodeAddress 네이버 Geocode API 주소 결과
type NaverGeocodeAddress struct {
	RoadAddress    string `json:"roadAddress"`
	JibunAddress   string `json:"jibunAddress"`
	EnglishAddress string `json:"englishAddress"`
	X              string `json:"x"` // longitude
	Y              string `json:"y"` // latitude
}

// NaverGeocodeResponse 네이버 Geocode API 응답
type NaverGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"errorMessage"`
	Addresses    []NaverGeocodeAddress `json:"addresses"`
}
