package http

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/melih/lighthouse-info/internal/core/ports"
)

type InfoHandler struct {
	service ports.InfoService
}

func NewInfoHandler(service ports.InfoService) *InfoHandler {
	return &InfoHandler{service: service}
}

// DockerInfo serves the payload the viewer renders.
func (h *InfoHandler) DockerInfo(c *fiber.Ctx) error {
	info, err := h.service.DockerInfo(c.Context())
	if err != nil {
		slog.Error("docker info failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(info)
}

func (h *InfoHandler) HostInfo(c *fiber.Ctx) error {
	info, err := h.service.HostInfo(c.Context())
	if err != nil {
		slog.Error("host info failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(info)
}

func Healthz(c *fiber.Ctx) error {
	return c.SendString("ok")
}
