package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "vibecart/internal/log"
	"vibecart/internal/services"
)

type CartHandler struct {
	Cart          *services.CartService
	DefaultUserID int64
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	uid := ResolveUserID(c, h.DefaultUserID)
	cart, err := h.Cart.View(uid)
	if err != nil {
		applog.Error(c, "cart.view", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cart)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	uid := ResolveUserID(c, h.DefaultUserID)

	var req struct {
		ProductID int64 `json:"productId"`
		Qty       int   `json:"qty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "productId and qty required"})
	}
	// Zero values only; a negative qty passes through.
	if req.ProductID == 0 || req.Qty == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "productId and qty required"})
	}

	line, created, err := h.Cart.Add(uid, req.ProductID, req.Qty)
	if err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"product_id": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "cart.add", map[string]any{"line_id": line.ID, "product_id": line.ProductID, "qty": line.Qty})
	if created {
		return c.Status(fiber.StatusCreated).JSON(line)
	}
	return c.JSON(line)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	uid := ResolveUserID(c, h.DefaultUserID)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cart item id"})
	}

	if err := h.Cart.Remove(uid, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found or not yours"})
		}
		applog.Error(c, "cart.remove", err, map[string]any{"line_id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Audit(c, "cart.remove", map[string]any{"line_id": id})
	return c.JSON(fiber.Map{"success": true})
}
