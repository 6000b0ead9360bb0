// Package route 경로 초안(RouteDraft)을 관리한다.
// 초안은 작품의 순서 있는 목록이며 같은 작품은 한 번만 들어갈 수 있다.
// 모든 변경은 로컬 저장소에 write-through 된다.
package route

import (
	"errors"
	"sync"

	"github.com/ArTrack-Service/artwalk/internal/model"
)

// ErrDuplicate 이미 초안에 있는 작품을 추가하려는 경우
var ErrDuplicate = errors.New("이미 추가된 작품입니다")

// DraftStore 초안을 보존하는 저장소.
// 저장 실패는 저장소 쪽에서 삼키므로 여기서는 에러를 다루지 않는다.
type DraftStore interface {
	SaveDraft(items []model.RouteItem)
	LoadDraft() []model.RouteItem
	ClearDraft()
}

// Manager 경로 초안 관리자. 핸들러 고루틴들이 동시에 접근하므로
// 뮤텍스로 변경 연산을 직렬화한다.
type Manager struct {
	mu    sync.Mutex
	items []model.RouteItem
	store DraftStore
}

// NewManager 초안 관리자 생성. store는 nil이어도 된다(메모리 전용).
func NewManager(store DraftStore) *Manager {
	return &Manager{store: store}
}

// Load 저장소에서 초안 복원. 없거나 손상된 경우 빈 초안으로 시작한다.
func (m *Manager) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return
	}
	m.items = m.store.LoadDraft()
}

// Items 현재 초안의 순서 보존 스냅샷 복사본
func (m *Manager) Items() []model.RouteItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]model.RouteItem, len(m.items))
	copy(snapshot, m.items)
	return snapshot
}

// Len 초안 항목 수
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Contains 해당 작품이 초안에 있는지 확인
func (m *Manager) Contains(artworkID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(artworkID) >= 0
}

// Add 작품을 초안 끝에 추가. 이미 있으면 ErrDuplicate를 반환하고
// 초안은 변경하지 않는다.
func (m *Manager) Add(item model.RouteItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(item.ArtworkID) >= 0 {
		return ErrDuplicate
	}
	m.items = append(m.items, item)
	m.persist()
	return nil
}

// Remove 해당 작품을 초안에서 제거. 없는 id에 대해서는 아무 일도
// 하지 않고 false를 반환한다 — 제거는 멱등이며 절대 실패하지 않는다.
func (m *Manager) Remove(artworkID uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(artworkID)
	if idx < 0 {
		return false
	}
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	m.persist()
	return true
}

// Reorder from 위치의 항목을 to 위치로 이동 (remove-then-insert).
// from == to 이거나 인덱스가 [0, len) 밖이면 no-op.
func (m *Manager) Reorder(from, to int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.items)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return false
	}

	item := m.items[from]
	m.items = append(m.items[:from], m.items[from+1:]...)
	m.items = append(m.items[:to], append([]model.RouteItem{item}, m.items[to:]...)...)
	m.persist()
	return true
}

// Clear 초안 비우기. 저장 성공 후 호출된다.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	if m.store != nil {
		m.store.ClearDraft()
	}
}

// indexOf 호출 전 잠금 필요
func (m *Manager) indexOf(artworkID uint) int {
	for i, item := range m.items {
		if item.ArtworkID == artworkID {
			return i
		}
	}
	return -1
}

// persist 호출 전 잠금 필요
func (m *Manager) persist() {
	if m.store == nil {
		return
	}
	snapshot := make([]model.RouteItem, len(m.items))
	copy(snapshot, m.items)
	m.store.SaveDraft(snapshot)
}
