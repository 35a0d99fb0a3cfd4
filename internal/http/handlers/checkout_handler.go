package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "vibecart/internal/log"
	"vibecart/internal/services"
)

type CheckoutHandler struct {
	Checkout      *services.CheckoutService
	DefaultUserID int64
}

// Place computes a receipt from the client-submitted line list, re-priced
// server-side, then clears the user's entire cart. A clear failure is logged
// and swallowed: the client still gets its receipt.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	uid := ResolveUserID(c, h.DefaultUserID)

	var req struct {
		CartItems []services.CheckoutItem `json:"cartItems"`
		Name      string                  `json:"name"`
		Email     string                  `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cartItems required"})
	}
	if len(req.CartItems) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cartItems required"})
	}

	receipt, err := h.Checkout.Checkout(uid, req.CartItems, req.Name, req.Email)
	if err != nil {
		applog.Error(c, "checkout.price", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Checkout.ClearCart(uid); err != nil {
		// Fire and forget: the receipt already exists, so the caller sees
		// success even though stale lines may remain.
		applog.Error(c, "checkout.clear.fail", err, nil)
	}

	applog.Audit(c, "checkout.place", map[string]any{"ref": receipt.Ref, "total": receipt.Total})
	return c.JSON(fiber.Map{"receipt": receipt})
}
