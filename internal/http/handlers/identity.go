package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vibecart/internal/validate"
)

// ResolveUserID picks the caller's identity: query userId, then the
// x-user-id header, then the configured default. This is a spoofable tenant
// key, not authentication. The result is threaded explicitly; nothing reads
// it from global state.
func ResolveUserID(c *fiber.Ctx, defaultID int64) int64 {
	uid := defaultID
	if uid <= 0 {
		uid = 1
	}
	if n, ok := validate.UserID(c.Get("x-user-id")); ok {
		uid = n
	}
	if n, ok := validate.UserID(c.Query("userId")); ok {
		uid = n
	}
	c.Locals("userID", uid)
	return uid
}
