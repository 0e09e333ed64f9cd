package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"momentos/internal/gallery"
	"momentos/internal/metrics"
	"momentos/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListPhotosHandler returns the gallery in display order
func ListPhotosHandler(store *gallery.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.List())
	}
}

// AddPhotoHandler appends a photo from a pasted URL and optional caption.
// A blank URL is treated like a cancelled prompt and nothing is added;
// any other value is stored exactly as pasted.
func AddPhotoHandler(store *gallery.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddPhotoRequest
		if err := c.BodyParser(&req); err != nil {
			metrics.RejectedInputTotal.WithLabelValues("photo").Inc()
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}

		if strings.TrimSpace(req.URL) == "" {
			metrics.RejectedInputTotal.WithLabelValues("photo").Inc()
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
		}

		photo := models.Photo{
			ID:      time.Now().UnixMilli(),
			URL:     req.URL,
			Caption: req.Caption,
		}
		store.Append(photo)

		return c.Status(http.StatusCreated).JSON(photo)
	}
}

// DeletePhotoHandler removes a photo by id. Unknown ids still answer 204.
func DeletePhotoHandler(store *gallery.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("photo_id"), 10, 64)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid photo id"})
		}

		store.Remove(id)
		return c.SendStatus(http.StatusNoContent)
	}
}

// ReloadPhotosHandler re-reads the bundled photos, discarding added ones
func ReloadPhotosHandler(store *gallery.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Reload(); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(store.List())
	}
}
