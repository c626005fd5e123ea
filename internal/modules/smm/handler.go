package smm

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Outreach handles POST /smm/outreach.
func (h *Handler) Outreach(c *fiber.Ctx) error {
	var req OutreachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.SendOutreach(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNoContactEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"ok":        true,
		"emailSent": result.EmailSent,
		"brand":     result.Brand,
		"to":        result.To,
		"subject":   result.Subject,
	})
}

// ClassifyReply handles POST /smm/classify-reply.
func (h *Handler) ClassifyReply(c *fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.ClassifyReply(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrReplyTextRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"ok":        true,
		"category":  result.Category,
		"contactId": result.ContactID,
		"brand":     result.Brand,
		"offerSent": result.OfferSent,
	})
}

// FulfillFeatured handles POST /smm/fulfill-featured.
func (h *Handler) FulfillFeatured(c *fiber.Ctx) error {
	var req FulfillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.FulfillFeatured(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"ok":               true,
		"profileGenerated": result.ProfileGenerated,
		"brand":            result.Brand,
		"emailSent":        result.EmailSent,
	})
}

// DailyReport handles POST /smm/daily-report.
func (h *Handler) DailyReport(c *fiber.Ctx) error {
	report := h.service.DailyReport(time.Now())
	return c.JSON(fiber.Map{"ok": true, "report": report})
}
