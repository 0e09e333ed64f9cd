package handlers

import (
	"net/http"

	"momentos/internal/metrics"
	"momentos/internal/models"
	"momentos/internal/shell"

	"github.com/gofiber/fiber/v2"
)

func tabResponse(active shell.Tab) models.TabResponse {
	tabs := shell.Tabs()
	names := make([]string, len(tabs))
	for i, t := range tabs {
		names[i] = string(t)
	}
	return models.TabResponse{Active: string(active), Tabs: names}
}

func GetTabHandler(sh *shell.Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(tabResponse(sh.Current()))
	}
}

// SelectTabHandler switches sections; unknown names land on the default tab
func SelectTabHandler(sh *shell.Shell) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SelectTabRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}

		active := sh.Select(req.Tab)
		metrics.TabSelectionsTotal.WithLabelValues(string(active)).Inc()
		return c.JSON(tabResponse(active))
	}
}
