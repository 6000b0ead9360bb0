package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/model"
)

func newTestClient(url string) *Client {
	return NewClient(config.BackendAPIConfig{
		BaseURL: url,
		Timeout: 5 * time.Second,
	})
}

// TestArtworksForwardsSession Cookie 헤더가 그대로 전달된다
func TestArtworksForwardsSession(t *testing.T) {
	var gotCookie string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		_ = json.NewEncoder(w).Encode([]model.Artwork{
			{ID: 1, Name: "청계천 소라탑", Address: "서울 종로구", Category: model.CategoryPublicArt},
		})
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	artworks, err := c.Artworks(context.Background(), "sessionid=abc123")
	if err != nil {
		t.Fatalf("Artworks failed: %v", err)
	}

	if gotCookie != "sessionid=abc123" {
		t.Errorf("Expected Cookie header forwarded, got %q", gotCookie)
	}
	if len(artworks) != 1 || artworks[0].Name != "청계천 소라탑" {
		t.Errorf("Unexpected artworks: %+v", artworks)
	}
}

// TestUnauthorizedIsAuthExpired 401은 ErrAuthExpired로 변환된다
func TestUnauthorizedIsAuthExpired(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	_, err := c.Courses(context.Background(), "sessionid=expired")
	if !errors.Is(err, ErrAuthExpired) {
		t.Errorf("Expected ErrAuthExpired, got %v", err)
	}
}

// TestServerErrorIsStatusError 5xx는 StatusError로 변환된다
func TestServerErrorIsStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	err := c.AddFavorite(context.Background(), "", 1)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", statusErr.StatusCode)
	}
}

// TestCreateCourseBody 코스 생성 요청 본문과 응답 디코딩 확인
func TestCreateCourseBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/course" {
			t.Errorf("Expected POST /course, got %s %s", r.Method, r.URL.Path)
		}

		var req model.Course
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Points) != 2 || req.Points[0] != 7 || req.Points[1] != 3 {
			t.Errorf("Expected points [7 3], got %v", req.Points)
		}

		req.ID = 42
		req.CreatedAt = time.Now()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(req)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	created, err := c.CreateCourse(context.Background(), "", model.Course{
		Name:   "야간 산책",
		Points: []uint{7, 3},
	})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("Expected server-assigned id 42, got %d", created.ID)
	}
}

// TestRecommendCoursesQuery 추천 요청의 쿼리 파라미터 확인
func TestRecommendCoursesQuery(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "37.5665" || q.Get("lon") != "126.978" {
			t.Errorf("Unexpected lat/lon: %s/%s", q.Get("lat"), q.Get("lon"))
		}
		if q.Get("time") != "2" || q.Get("items") != "5" {
			t.Errorf("Unexpected time/items: %s/%s", q.Get("time"), q.Get("items"))
		}
		_ = json.NewEncoder(w).Encode([]model.Course{{ID: 1, Name: "추천 코스"}})
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	courses, err := c.RecommendCourses(context.Background(), "", 37.5665, 126.978, 2, 5)
	if err != nil {
		t.Fatalf("RecommendCourses failed: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("Expected 1 course, got %d", len(courses))
	}
}

// TestSignInCollectsCookies 로그인 응답의 Set-Cookie가 세션으로 합쳐진다
func TestSignInCollectsCookies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s3cret"})
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok"})
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	session, err := c.SignIn(context.Background(), SignInRequest{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	if session != "sessionid=s3cret; csrftoken=tok" {
		t.Errorf("Unexpected session: %q", session)
	}
}
