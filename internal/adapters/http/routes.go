package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/melih/lighthouse-info/internal/core/ports"
)

// NewApp wires the info routes onto a fiber app.
func NewApp(service ports.InfoService, readTimeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           readTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	h := NewInfoHandler(service)

	app.Get("/", h.Index)
	app.Get("/healthz", Healthz)

	api := app.Group("/api")
	api.Get("/docker-info", h.DockerInfo)
	api.Get("/host-info", h.HostInfo)

	return app
}
