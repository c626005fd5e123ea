package business2

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateListing handles POST /business2/create.
func (h *Handler) CreateListing(c *fiber.Ctx) error {
	var req ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.CreateListing(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrBusinessNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"ok":            true,
		"listingId":     result.ListingID,
		"tier":          result.Tier,
		"price":         result.Price,
		"headline":      result.Headline,
		"articleLength": result.ArticleLength,
		"articleHtml":   result.ArticleHTML,
		"adPositions":   result.AdPositions,
		"upsellDays":    result.UpsellDays,
		"message":       result.Message,
	})
}
