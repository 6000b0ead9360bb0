package handlers

import (
	"strings"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	backend *backend.Client
}

func NewAuthHandler(client *backend.Client) *AuthHandler {
	return &AuthHandler{backend: client}
}

func SetupAuthRoutes(router fiber.Router, client *backend.Client) {
	h := NewAuthHandler(client)

	router.Post("/sign-in", h.SignIn)
	router.Post("/sign-up", h.SignUp)
}

// SignIn godoc
// @Summary Sign in
// @Description 백엔드 로그인을 대행하고 발급된 세션 쿠키를 내려준다
// @Tags auth
// @Accept json
// @Produce json
// @Param request body backend.SignInRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req backend.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.backend.SignIn(c.UserContext(), req)
	if err != nil {
		return err
	}

	setSessionCookies(c, session)
	return c.JSON(fiber.Map{"message": "로그인되었습니다"})
}

// SignUp godoc
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body backend.SignUpRequest true "New account"
// @Success 201 {object} map[string]string
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req backend.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.backend.SignUp(c.UserContext(), req)
	if err != nil {
		return err
	}

	setSessionCookies(c, session)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "가입되었습니다"})
}

// setSessionCookies 백엔드가 발급한 세션(Cookie 헤더 원문)을
// 개별 쿠키로 풀어 응답에 싣는다.
func setSessionCookies(c *fiber.Ctx, session string) {
	if session == "" {
		return
	}
	for _, pair := range strings.Split(session, "; ") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}
