// Package backend 예술작품/코스 백엔드 REST API 클라이언트.
// 인증은 쿠키 세션 기반이며, 수신한 Cookie 헤더를 그대로 전달한다.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/logger"
)

// ErrAuthExpired 백엔드가 401을 반환한 경우 — 로그인 진입점으로
// 리다이렉트해야 하는 세션 만료 신호이지 일반 오류가 아니다.
var ErrAuthExpired = errors.New("세션이 만료되었습니다")

// StatusError 2xx가 아닌 응답. 재시도 가능한 네트워크/서버 오류로 취급한다.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("백엔드 API 오류: status=%d", e.StatusCode)
}

// Client 백엔드 API 클라이언트
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 새 클라이언트 생성
func NewClient(cfg config.BackendAPIConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// do 공통 요청 처리. session은 수신한 Cookie 헤더 원문이다.
// out이 nil이 아니면 응답 본문을 JSON으로 디코딩한다.
func (c *Client) do(ctx context.Context, method, path, session string, body, out interface{}) error {
	log := logger.GetLogger("backend")

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("요청 JSON 생성 실패: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("HTTP 요청 생성 실패: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set("Cookie", session)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("백엔드 호출 실패: %s %s status=%d", method, path, resp.StatusCode)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("응답 JSON 파싱 실패: %w", err)
		}
	}
	return nil
}
