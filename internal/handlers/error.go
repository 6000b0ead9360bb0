package handlers

import (
	"errors"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/course"
	"github.com/ArTrack-Service/artwalk/internal/route"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	SignIn  string `json:"signIn,omitempty"`
}

// NewErrorHandler returns the custom error handler for Fiber.
// 도메인 에러를 HTTP 상태 코드로 변환한다.
func NewErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// 세션 만료 — 로그인 진입점을 함께 내려준다
		if errors.Is(err, backend.ErrAuthExpired) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:  "세션이 만료되었습니다. 다시 로그인해주세요.",
				SignIn: cfg.SignInPath,
			})
		}

		if errors.Is(err, route.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error: "이미 경로에 추가된 작품입니다.",
			})
		}

		if errors.Is(err, course.ErrSaveInFlight) {
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
				Error: "저장이 이미 진행 중입니다.",
			})
		}

		var validationErr *course.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: validationErr.Error(),
			})
		}

		var saveFailedErr *course.SaveFailedError
		if errors.As(err, &saveFailedErr) {
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error:   "코스 저장에 실패했습니다. 경로는 유지되므로 다시 시도해주세요.",
				Details: saveFailedErr.Err.Error(),
			})
		}

		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) {
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error:   "백엔드 요청 실패",
				Details: statusErr.Error(),
			})
		}

		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		return c.Status(code).JSON(ErrorResponse{
			Error: message,
		})
	}
}
