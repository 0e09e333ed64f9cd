package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"momentos/internal/metrics"
	"momentos/internal/models"
	"momentos/internal/moments"

	"github.com/gofiber/fiber/v2"
)

func ListMomentsHandler(store *moments.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.List())
	}
}

// AddMomentHandler saves the "new moment" form
func AddMomentHandler(store *moments.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MomentInput
		if err := c.BodyParser(&req); err != nil {
			metrics.RejectedInputTotal.WithLabelValues("moment").Inc()
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}

		m, err := store.Add(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, moments.ErrInvalidMoment) {
				metrics.RejectedInputTotal.WithLabelValues("moment").Inc()
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(http.StatusCreated).JSON(m)
	}
}

func DeleteMomentHandler(store *moments.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("moment_id"), 10, 64)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid moment id"})
		}

		store.Remove(id)
		return c.SendStatus(http.StatusNoContent)
	}
}
