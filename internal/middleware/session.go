package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// Session 수신한 Cookie 헤더를 세션으로 보관하는 미들웨어.
// 자격 증명 해석은 백엔드 몫이고, 여기서는 전달만 한다.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(sessionKey, c.Get(fiber.HeaderCookie))
		return c.Next()
	}
}

// SessionFrom 컨텍스트에서 세션(Cookie 헤더 원문) 추출
func SessionFrom(c *fiber.Ctx) string {
	session, _ := c.Locals(sessionKey).(string)
	return session
}
