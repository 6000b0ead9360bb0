package handlers

import (
	"fmt"
	"strconv"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/course"
	"github.com/ArTrack-Service/artwalk/internal/middleware"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"github.com/ArTrack-Service/artwalk/pkg/share"
	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	service *course.Service
	backend *backend.Client
	cfg     *config.Config
}

func NewCourseHandler(service *course.Service, client *backend.Client, cfg *config.Config) *CourseHandler {
	return &CourseHandler{
		service: service,
		backend: client,
		cfg:     cfg,
	}
}

func SetupCourseRoutes(router fiber.Router, service *course.Service, client *backend.Client, cfg *config.Config) {
	h := NewCourseHandler(service, client, cfg)

	router.Get("/", h.ListCourses)
	router.Post("/", h.CreateCourse)
	router.Put("/", h.UpdateCourse)
	router.Get("/recommend", h.RecommendCourses)
	router.Get("/shared/:token", h.GetSharedCourse)
	router.Get("/:id/share", h.ShareCourse)
	router.Get("/:id/share/qr", h.ShareCourseQR)
	router.Delete("/:id", h.DeleteCourse)
}

type createCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CanShare    bool   `json:"canShare"`
}

// ListCourses godoc
// @Summary List my courses
// @Tags course
// @Accept json
// @Produce json
// @Success 200 {array} model.Course
// @Router /course [get]
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext(), middleware.SessionFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// CreateCourse godoc
// @Summary Save current route draft as a course
// @Description 현재 경로 초안을 코스로 저장한다. 성공 시 초안이 비워진다.
// @Tags course
// @Accept json
// @Produce json
// @Param request body createCourseRequest true "Course name/description"
// @Success 201 {object} model.Course
// @Router /course [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req createCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := h.service.Create(c.UserContext(), middleware.SessionFrom(c), req.Name, req.Description, req.CanShare)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateCourse godoc
// @Summary Update an existing course
// @Tags course
// @Accept json
// @Produce json
// @Param request body model.Course true "Course"
// @Success 200 {object} model.Course
// @Router /course [put]
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	var req model.Course
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.service.Update(c.UserContext(), middleware.SessionFrom(c), req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags course
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 204
// @Router /course/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "유효하지 않은 코스 id"})
	}

	if err := h.service.Delete(c.UserContext(), middleware.SessionFrom(c), uint(id)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RecommendCourses godoc
// @Summary Recommend courses near a location
// @Description 현재 위치(lat/lon), 소요 시간(time, 시간 단위), 작품 수(items) 기준 추천
// @Tags course
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param time query number false "Available hours"
// @Param items query int false "Number of artworks"
// @Success 200 {array} model.Course
// @Router /course/recommend [get]
func (h *CourseHandler) RecommendCourses(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat이 필요합니다"})
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lon이 필요합니다"})
	}

	hours, _ := strconv.ParseFloat(c.Query("time", "2"), 64)
	items, _ := strconv.Atoi(c.Query("items", "5"))

	courses, err := h.backend.RecommendCourses(c.UserContext(), middleware.SessionFrom(c), lat, lon, hours, items)
	if err != nil {
		return err
	}

	return c.JSON(courses)
}

// ShareCourse godoc
// @Summary Issue a share link for a course
// @Description 코스 공유 토큰과 공유 URL 발급
// @Tags course
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]string
// @Router /course/{id}/share [get]
func (h *CourseHandler) ShareCourse(c *fiber.Ctx) error {
	id, token, err := h.shareToken(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"courseId": id,
		"token":    token,
		"url":      h.shareURL(token),
	})
}

// ShareCourseQR godoc
// @Summary Issue a share link QR code
// @Description 공유 URL을 담은 QR 코드 PNG
// @Tags course
// @Accept json
// @Produce png
// @Param id path int true "Course ID"
// @Success 200 {file} binary
// @Router /course/{id}/share/qr [get]
func (h *CourseHandler) ShareCourseQR(c *fiber.Ctx) error {
	_, token, err := h.shareToken(c)
	if err != nil {
		return err
	}

	png, err := share.QRPNG(h.shareURL(token), 256)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "QR 코드 생성 실패")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// GetSharedCourse godoc
// @Summary View a shared course
// @Description 공유 토큰을 검증하고 해당 코스를 반환한다
// @Tags course
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} model.Course
// @Router /course/shared/{token} [get]
func (h *CourseHandler) GetSharedCourse(c *fiber.Ctx) error {
	claims, err := share.ValidateToken(c.Params("token"), h.cfg.ShareSecretKey)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "유효하지 않거나 만료된 공유 링크입니다"})
	}

	shared, err := h.backend.Course(c.UserContext(), middleware.SessionFrom(c), claims.CourseID)
	if err != nil {
		return err
	}

	if !shared.CanShare {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "공유가 허용되지 않은 코스입니다"})
	}

	return c.JSON(shared)
}

func (h *CourseHandler) shareToken(c *fiber.Ctx) (uint, string, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, "", fiber.NewError(fiber.StatusBadRequest, "유효하지 않은 코스 id")
	}

	// 공유가 허용된 코스인지 먼저 확인한다
	target, err := h.backend.Course(c.UserContext(), middleware.SessionFrom(c), uint(id))
	if err != nil {
		return 0, "", err
	}
	if !target.CanShare {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "공유가 허용되지 않은 코스입니다")
	}

	token, err := share.GenerateToken(uint(id), h.cfg.ShareSecretKey, h.cfg.ShareTokenExpireH)
	if err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "공유 토큰 생성 실패")
	}

	return uint(id), token, nil
}

func (h *CourseHandler) shareURL(token string) string {
	return fmt.Sprintf("%s/course/shared/%s", h.cfg.ShareBaseURL, token)
}
