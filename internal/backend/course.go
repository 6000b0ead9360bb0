package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ArTrack-Service/artwalk/internal/model"
)

// Courses 세션 사용자의 코스 목록 조회
func (c *Client) Courses(ctx context.Context, session string) ([]model.Course, error) {
	var courses []model.Course
	if err := c.do(ctx, http.MethodGet, "/course", session, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse 코스 생성. 서버가 id와 createdAt을 부여한 코스를 반환한다.
func (c *Client) CreateCourse(ctx context.Context, session string, course model.Course) (*model.Course, error) {
	var created model.Course
	if err := c.do(ctx, http.MethodPost, "/course", session, course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Course 코스 단건 조회
func (c *Client) Course(ctx context.Context, session string, id uint) (*model.Course, error) {
	var course model.Course
	path := fmt.Sprintf("/course/%d", id)
	if err := c.do(ctx, http.MethodGet, path, session, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse 코스 수정. 서버 응답이 정본이다(createdAt/id 포함).
func (c *Client) UpdateCourse(ctx context.Context, session string, course model.Course) (*model.Course, error) {
	var updated model.Course
	if err := c.do(ctx, http.MethodPut, "/course", session, course, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse 코스 삭제
func (c *Client) DeleteCourse(ctx context.Context, session string, id uint) error {
	path := fmt.Sprintf("/course/%d", id)
	return c.do(ctx, http.MethodDelete, path, session, nil, nil)
}

// RecommendCourses 현재 위치/시간/작품 수 조건에 맞는 추천 코스 조회
func (c *Client) RecommendCourses(ctx context.Context, session string, lat, lon, hours float64, items int) ([]model.Course, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("time", strconv.FormatFloat(hours, 'f', -1, 64))
	q.Set("items", strconv.Itoa(items))

	var courses []model.Course
	if err := c.do(ctx, http.MethodGet, "/course?"+q.Encode(), session, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
