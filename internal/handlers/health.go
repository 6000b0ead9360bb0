package handlers

import (
	"github.com/ArTrack-Service/artwalk/internal/store"
	"github.com/gofiber/fiber/v2"
)

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the companion server
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
	})
}

// LivenessCheck godoc
// @Summary Liveness probe
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /liveness [get]
func LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessCheck godoc
// @Summary Readiness probe
// @Description 로컬 저장소가 메모리 모드로 내려앉았는지도 함께 알려준다
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /readiness [get]
func ReadinessCheck(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ready"
		storage := "durable"
		if !s.Durable() {
			storage = "memory-only"
		}
		return c.JSON(fiber.Map{
			"status":  status,
			"storage": storage,
		})
	}
}
