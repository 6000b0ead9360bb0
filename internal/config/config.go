package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// BackendAPIConfig 예술작품/코스 백엔드 API 관련 설정
type BackendAPIConfig struct {
	BaseURL string        // 예: https://api.artrack.moveto.kr/api/v1
	Timeout time.Duration // HTTP 요청 타임아웃
}

// NaverAPIConfig 네이버 지도 API 관련 클라이언트 ID 및 시크릿 설정
type NaverAPIConfig struct {
	MapClientID     string
	MapClientSecret string
}

// StoreConfig 로컬 저장소(경로 초안/지오코딩 캐시) 설정
type StoreConfig struct {
	Path          string        // sqlite 파일 경로
	GeocodeExpiry time.Duration // 지오코딩 캐시 만료 기간
}

// Config 애플리케이션의 모든 설정을 통합 관리하는 메인 구조체
type Config struct {
	// Server
	ServerPort string
	ServerEnv  string

	// 외부 서비스
	BackendAPI BackendAPIConfig
	NaverAPI   NaverAPIConfig

	// 로컬 저장소
	Store StoreConfig

	// 공유 토큰 서명 키
	ShareSecretKey    string
	ShareTokenExpireH int
	ShareBaseURL      string

	// 401 수신 시 리다이렉트할 로그인 진입점
	SignInPath string

	// SigNoz
	SigNozEndpoint string
}

// Load 환경변수에서 설정을 로드
func Load() *Config {
	// .env 파일 로드 (없어도 에러 무시)
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),

		BackendAPI: BackendAPIConfig{
			BaseURL: getEnv("BACKEND_API_BASE_URL", "https://api.artrack.moveto.kr/api/v1"),
			Timeout: time.Duration(getEnvAsInt("BACKEND_API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		NaverAPI: NaverAPIConfig{
			MapClientID:     getEnv("NAVER_MAP_CLIENT_ID", ""),
			MapClientSecret: getEnv("NAVER_MAP_CLIENT_SECRET", ""),
		},
		Store: StoreConfig{
			Path:          getEnv("STORE_PATH", "artwalk.db"),
			GeocodeExpiry: time.Duration(getEnvAsInt("GEOCODE_CACHE_EXPIRE_DAYS", 30)) * 24 * time.Hour,
		},

		ShareSecretKey:    getEnv("SHARE_SECRET_KEY", ""),
		ShareTokenExpireH: getEnvAsInt("SHARE_TOKEN_EXPIRE_HOURS", 72),
		ShareBaseURL:      getEnv("SHARE_BASE_URL", "http://localhost:3000"),

		SignInPath: getEnv("SIGN_IN_PATH", "/"),

		SigNozEndpoint: getEnv("SIGNOZ_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
