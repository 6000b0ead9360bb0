package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/geocode"
	"github.com/ArTrack-Service/artwalk/internal/logger"
	"github.com/ArTrack-Service/artwalk/internal/store"
)

// warmcache 작품 카탈로그 전체의 주소를 미리 지오코딩해
// 로컬 캐시를 데워 두는 배치 도구.
func main() {
	// 로거 초기화
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.GetLogger("warmcache")

	// 컨텍스트 설정 (시그널 핸들링)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// CLI 인자 파싱
	category := flag.String("type", "", "대상 카테고리 (선택, publicArt/gallery/sculpture/statue)")
	timeout := flag.Duration("timeout", 10*time.Minute, "전체 작업 타임아웃")
	flag.Parse()

	// 설정 로드
	cfg := config.Load()

	// 로컬 저장소 — 캐시를 쓰는 게 목적이므로 내구 저장이 필수다
	localStore := store.Open(cfg.Store, cfg.ServerEnv)
	if !localStore.Durable() {
		log.Error("로컬 저장소를 열 수 없어 캐시를 데울 수 없습니다")
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("종료 시그널 수신, 정리 중...")
		cancel()
	}()

	ctx, timeoutCancel := context.WithTimeout(ctx, *timeout)
	defer timeoutCancel()

	client := backend.NewClient(cfg.BackendAPI)
	geocoder := geocode.New(cfg.NaverAPI, localStore)

	// 작품 카탈로그 조회
	artworks, err := client.Artworks(ctx, "")
	if err != nil {
		log.Errorf("작품 목록 조회 실패: %v", err)
		os.Exit(1)
	}
	log.Infof("작품 %d건 조회 완료", len(artworks))

	addresses := make([]string, 0, len(artworks))
	for _, a := range artworks {
		if *category != "" && string(a.Category) != *category {
			continue
		}
		if a.Address == "" {
			continue
		}
		addresses = append(addresses, a.Address)
	}

	if len(addresses) == 0 {
		log.Info("지오코딩할 주소가 없습니다")
		return
	}

	start := time.Now()
	coords := geocoder.ResolveBatch(ctx, addresses)

	resolved := 0
	for _, coord := range coords {
		if coord != nil {
			resolved++
		}
	}

	log.Infof("지오코딩 완료: 대상 %d건, 성공 %d건, 실패 %d건, 소요 %s",
		len(addresses), resolved, len(addresses)-resolved, time.Since(start).Round(time.Millisecond))
}
