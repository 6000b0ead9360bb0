package handlers

import (
	"strconv"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/maps"
	"github.com/ArTrack-Service/artwalk/internal/middleware"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"github.com/ArTrack-Service/artwalk/internal/route"
	"github.com/gofiber/fiber/v2"
)

type RouteHandler struct {
	manager *route.Manager
	backend *backend.Client
	maps    *maps.Adapter
}

func NewRouteHandler(manager *route.Manager, client *backend.Client, adapter *maps.Adapter) *RouteHandler {
	return &RouteHandler{
		manager: manager,
		backend: client,
		maps:    adapter,
	}
}

func SetupRouteRoutes(router fiber.Router, manager *route.Manager, client *backend.Client, adapter *maps.Adapter) {
	h := NewRouteHandler(manager, client, adapter)

	router.Get("/", h.GetRoute)
	router.Post("/", h.AddItem)
	router.Patch("/", h.Reorder)
	router.Delete("/", h.ClearRoute)
	router.Get("/map", h.GetRouteMap)
	router.Delete("/:id", h.RemoveItem)
}

type addItemRequest struct {
	ArtworkID uint `json:"id"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// GetRoute godoc
// @Summary Get current route draft
// @Description 현재 경로 초안의 항목 목록 (초안 순서대로)
// @Tags route
// @Accept json
// @Produce json
// @Success 200 {array} model.RouteItem
// @Router /route [get]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	items := h.manager.Items()
	if items == nil {
		items = []model.RouteItem{}
	}
	return c.JSON(items)
}

// AddItem godoc
// @Summary Add artwork to route draft
// @Description 작품을 경로 초안 끝에 추가한다. 이미 있는 작품이면 409.
// @Tags route
// @Accept json
// @Produce json
// @Param request body addItemRequest true "Artwork ID"
// @Success 201 {array} model.RouteItem
// @Router /route [post]
func (h *RouteHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// 초안 항목은 비정규화 — 작품 정보를 조회해 담는다
	artwork, err := h.backend.Artwork(c.UserContext(), middleware.SessionFrom(c), req.ArtworkID)
	if err != nil {
		return err
	}

	item := model.RouteItemOf(*artwork)
	if err := h.manager.Add(item); err != nil {
		return err
	}

	h.maps.AddIntent(item)

	return c.Status(fiber.StatusCreated).JSON(h.manager.Items())
}

// RemoveItem godoc
// @Summary Remove artwork from route draft
// @Description 초안에서 작품을 제거한다. 없는 작품이어도 성공으로 처리한다.
// @Tags route
// @Accept json
// @Produce json
// @Param id path int true "Artwork ID"
// @Success 200 {array} model.RouteItem
// @Router /route/{id} [delete]
func (h *RouteHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "유효하지 않은 작품 id"})
	}

	h.manager.Remove(uint(id))

	items := h.manager.Items()
	if items == nil {
		items = []model.RouteItem{}
	}
	return c.JSON(items)
}

// Reorder godoc
// @Summary Reorder route draft
// @Description from 위치의 항목을 to 위치로 옮긴다. 범위를 벗어나면 400.
// @Tags route
// @Accept json
// @Produce json
// @Param request body reorderRequest true "From/To positions"
// @Success 200 {array} model.RouteItem
// @Router /route [patch]
func (h *RouteHandler) Reorder(c *fiber.Ctx) error {
	var req reorderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !h.manager.Reorder(req.From, req.To) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "유효하지 않은 위치입니다"})
	}

	return c.JSON(h.manager.Items())
}

// ClearRoute godoc
// @Summary Clear route draft
// @Tags route
// @Accept json
// @Produce json
// @Success 204
// @Router /route [delete]
func (h *RouteHandler) ClearRoute(c *fiber.Ctx) error {
	h.manager.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetRouteMap godoc
// @Summary Get map view of current route draft
// @Description 초안 순서대로 번호 매긴 마커, 폴리라인 경로, 중심 좌표, 총 거리
// @Tags route
// @Accept json
// @Produce json
// @Success 200 {object} maps.RouteView
// @Router /route/map [get]
func (h *RouteHandler) GetRouteMap(c *fiber.Ctx) error {
	view := h.maps.BuildRouteView(c.UserContext(), h.manager.Items())
	return c.JSON(view)
}
