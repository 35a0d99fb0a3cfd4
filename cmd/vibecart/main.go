package main

import (
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"vibecart/internal/config"
	"vibecart/internal/http/handlers"
	applog "vibecart/internal/log"
	"vibecart/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	// The browser client is served from a different origin.
	app.Use(cors.New())

	deps := handlers.NewDeps(db, cfg)

	api := app.Group("/api")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Post("/checkout", deps.CheckoutHandler.Place)
	api.Post("/users", deps.UserHandler.Create)
	api.Get("/users/:id", deps.UserHandler.Get)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
