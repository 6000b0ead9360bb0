// Package course 경로 초안을 백엔드 Course 리소스로 확정하는 게이트웨이.
// 검증은 네트워크 호출 전에 끝내고, 저장 성공 시에만 초안을 비운다.
package course

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/logger"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"github.com/ArTrack-Service/artwalk/internal/route"
)

// ErrSaveInFlight 저장이 이미 진행 중인 경우.
// 더블 클릭으로 코스가 두 번 생성되는 것을 막는다.
var ErrSaveInFlight = errors.New("저장이 이미 진행 중입니다")

// ValidationError 저장 전 검증 실패. 네트워크 호출 전에 반환된다.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("유효하지 않은 %s: %s", e.Field, e.Reason)
}

// SaveFailedError 네트워크/서버 오류로 저장 실패. 초안은 보존되므로
// 사용자가 재시도할 수 있다.
type SaveFailedError struct {
	Err error
}

func (e *SaveFailedError) Error() string {
	return "코스 저장 실패: " + e.Err.Error()
}

func (e *SaveFailedError) Unwrap() error {
	return e.Err
}

// Courses 게이트웨이가 사용하는 백엔드 연산
type Courses interface {
	Courses(ctx context.Context, session string) ([]model.Course, error)
	CreateCourse(ctx context.Context, session string, course model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, session string, course model.Course) (*model.Course, error)
	DeleteCourse(ctx context.Context, session string, id uint) error
}

// Service 코스 저장 게이트웨이
type Service struct {
	backend Courses
	manager *route.Manager

	// 진행 중 저장 가드
	saveMu sync.Mutex
}

// NewService 게이트웨이 생성
func NewService(b Courses, m *route.Manager) *Service {
	return &Service{backend: b, manager: m}
}

// Create 현재 초안을 새 Course로 저장한다.
// 초안 스냅샷은 호출 시점에 찍는다 — 저장 중 초안이 또 바뀌어도
// 마지막 클릭 기준으로 저장된다.
func (s *Service) Create(ctx context.Context, session, name, description string, canShare bool) (*model.Course, error) {
	log := logger.GetLogger("course")

	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "코스 이름을 입력해주세요"}
	}

	snapshot := s.manager.Items()
	if len(snapshot) == 0 {
		return nil, &ValidationError{Field: "points", Reason: "추가된 작품이 없습니다"}
	}

	if !s.saveMu.TryLock() {
		return nil, ErrSaveInFlight
	}
	defer s.saveMu.Unlock()

	points := make([]uint, 0, len(snapshot))
	for _, item := range snapshot {
		points = append(points, item.ArtworkID)
	}

	created, err := s.backend.CreateCourse(ctx, session, model.Course{
		Name:        name,
		Description: description,
		Points:      points,
		CanShare:    canShare,
	})
	if err != nil {
		if errors.Is(err, backend.ErrAuthExpired) {
			return nil, err
		}
		log.Warnf("코스 저장 실패 (초안 유지): %v", err)
		return nil, &SaveFailedError{Err: err}
	}

	// 저장이 확정된 뒤에만 초안을 비운다
	s.manager.Clear()
	log.Infof("코스 저장 완료: id=%d name=%s points=%d", created.ID, created.Name, len(created.Points))

	return created, nil
}

// Update 기존 코스 수정. id가 있어야 하며 검증 규칙은 Create와 같다.
// 서버 응답이 정본이다.
func (s *Service) Update(ctx context.Context, session string, course model.Course) (*model.Course, error) {
	if course.ID == 0 {
		return nil, &ValidationError{Field: "id", Reason: "수정할 코스가 지정되지 않았습니다"}
	}
	if course.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "코스 이름을 입력해주세요"}
	}
	if len(course.Points) == 0 {
		return nil, &ValidationError{Field: "points", Reason: "추가된 작품이 없습니다"}
	}

	if !s.saveMu.TryLock() {
		return nil, ErrSaveInFlight
	}
	defer s.saveMu.Unlock()

	updated, err := s.backend.UpdateCourse(ctx, session, course)
	if err != nil {
		if errors.Is(err, backend.ErrAuthExpired) {
			return nil, err
		}
		return nil, &SaveFailedError{Err: err}
	}
	return updated, nil
}

// Delete 코스 삭제. 401은 세션 만료 신호로 그대로 전파한다.
func (s *Service) Delete(ctx context.Context, session string, id uint) error {
	return s.backend.DeleteCourse(ctx, session, id)
}

// List 세션 사용자의 코스 목록
func (s *Service) List(ctx context.Context, session string) ([]model.Course, error) {
	return s.backend.Courses(ctx, session)
}
