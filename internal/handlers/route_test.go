package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/maps"
	"github.com/ArTrack-Service/artwalk/internal/middleware"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"github.com/ArTrack-Service/artwalk/internal/route"
	"github.com/gofiber/fiber/v2"
)

// fakeResolver 모든 주소를 고정 좌표로 해석한다
type fakeResolver struct{}

func (fakeResolver) ResolveBatch(ctx context.Context, addresses []string) []*model.Coordinate {
	results := make([]*model.Coordinate, len(addresses))
	for i := range addresses {
		results[i] = &model.Coordinate{Lat: 37.5, Lng: 127.0}
	}
	return results
}

// newDraftApp 백엔드 스텁과 초안 관리자를 묶은 테스트 앱
func newDraftApp(t *testing.T, backendStatus int) (*fiber.App, *route.Manager) {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if backendStatus != http.StatusOK {
			w.WriteHeader(backendStatus)
			return
		}
		// GET /artwork/{id}
		var id uint
		if _, err := fmt.Sscanf(r.URL.Path, "/artwork/%d", &id); err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Artwork{
			ID:       id,
			Name:     fmt.Sprintf("작품%d", id),
			Address:  "서울 종로구",
			Category: model.CategoryPublicArt,
		})
	}))
	t.Cleanup(ts.Close)

	client := backend.NewClient(config.BackendAPIConfig{BaseURL: ts.URL, Timeout: 5 * time.Second})
	manager := route.NewManager(nil)
	adapter := maps.NewAdapter(fakeResolver{})

	cfg := &config.Config{SignInPath: "/sign-in"}
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(cfg)})
	app.Use(middleware.Session())
	SetupRouteRoutes(app.Group("/route"), manager, client, adapter)

	return app, manager
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// TestAddItemToDraft 작품 추가 시 백엔드에서 정보를 받아 초안에 담는다
func TestAddItemToDraft(t *testing.T) {
	app, manager := newDraftApp(t, http.StatusOK)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/route", `{"id":7}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", resp.StatusCode)
	}

	items := manager.Items()
	if len(items) != 1 || items[0].ArtworkID != 7 || items[0].Name != "작품7" {
		t.Errorf("Unexpected draft: %+v", items)
	}
}

// TestAddDuplicateItemConflict 중복 추가는 409
func TestAddDuplicateItemConflict(t *testing.T) {
	app, _ := newDraftApp(t, http.StatusOK)

	if _, err := app.Test(jsonRequest(http.MethodPost, "/route", `{"id":7}`)); err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	resp, err := app.Test(jsonRequest(http.MethodPost, "/route", `{"id":7}`))
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("Expected 409, got %d", resp.StatusCode)
	}
}

// TestAuthExpiredResponse 백엔드 401은 로그인 안내와 함께 401로 변환된다
func TestAuthExpiredResponse(t *testing.T) {
	app, _ := newDraftApp(t, http.StatusUnauthorized)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/route", `{"id":7}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.SignIn != "/sign-in" {
		t.Errorf("Expected signIn path in response, got %q", body.SignIn)
	}
}

// TestReorderDraft 순서 변경과 범위 밖 요청 처리
func TestReorderDraft(t *testing.T) {
	app, manager := newDraftApp(t, http.StatusOK)

	for _, id := range []int{1, 2, 3} {
		if _, err := app.Test(jsonRequest(http.MethodPost, "/route", fmt.Sprintf(`{"id":%d}`, id))); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/route", `{"from":0,"to":2}`))
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	items := manager.Items()
	if items[0].ArtworkID != 2 || items[1].ArtworkID != 3 || items[2].ArtworkID != 1 {
		t.Errorf("Expected order [2 3 1], got %+v", items)
	}

	// 범위 밖은 400이고 초안은 불변이다
	resp, _ = app.Test(jsonRequest(http.MethodPatch, "/route", `{"from":0,"to":99}`))
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range reorder, got %d", resp.StatusCode)
	}
	if manager.Items()[0].ArtworkID != 2 {
		t.Error("Expected draft unchanged after invalid reorder")
	}
}

// TestRemoveItemIdempotent 없는 작품 제거도 성공으로 응답한다
func TestRemoveItemIdempotent(t *testing.T) {
	app, _ := newDraftApp(t, http.StatusOK)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/route/999", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected 200 for absent item, got %d", resp.StatusCode)
	}
}

// TestRouteMapView 초안 지도 뷰 — 마커 순번과 경로
func TestRouteMapView(t *testing.T) {
	app, _ := newDraftApp(t, http.StatusOK)

	for _, id := range []int{1, 2} {
		if _, err := app.Test(jsonRequest(http.MethodPost, "/route", fmt.Sprintf(`{"id":%d}`, id))); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/route/map", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var view maps.RouteView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("Failed to decode view: %v", err)
	}
	if len(view.Markers) != 2 || view.Markers[0].Order != 1 {
		t.Errorf("Unexpected markers: %+v", view.Markers)
	}
	if view.Center == nil {
		t.Error("Expected center to be set")
	}
}

// TestGetRouteEmpty 빈 초안은 빈 배열로 응답한다 (null 아님)
func TestGetRouteEmpty(t *testing.T) {
	app, _ := newDraftApp(t, http.StatusOK)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/route", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("Expected [], got %s", buf.String())
	}
}
