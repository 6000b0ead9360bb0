package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// SignInRequest 로그인 요청
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest 회원가입 요청
type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignIn 로그인. 백엔드가 발급한 세션 쿠키(Cookie 헤더 원문)를 반환한다.
// 자격 증명은 전달만 할 뿐 저장하지 않는다.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (string, error) {
	return c.authPost(ctx, "/auth/sign-in", req)
}

// SignUp 회원가입
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (string, error) {
	return c.authPost(ctx, "/auth/sign-up", req)
}

func (c *Client) authPost(ctx context.Context, path string, body interface{}) (string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("요청 JSON 생성 실패: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("HTTP 요청 생성 실패: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrAuthExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	// Set-Cookie 들을 Cookie 헤더 원문으로 변환해 세션으로 사용
	var pairs []string
	for _, cookie := range resp.Cookies() {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	return strings.Join(pairs, "; "), nil
}
