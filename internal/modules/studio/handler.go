package studio

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bdt-media/sales-engine/internal/core/prompts"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GenerateEmail handles POST /generate/email.
func (h *Handler) GenerateEmail(c *fiber.Ctx) error {
	var req prompts.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateEmail(c.Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return respondGeneration(c, gen, nil)
}

// GenerateSocial handles POST /generate/social.
func (h *Handler) GenerateSocial(c *fiber.Ctx) error {
	var req prompts.SocialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateSocialPost(c.Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return respondGeneration(c, gen, nil)
}

// GenerateAdCopy handles POST /generate/ad-copy.
func (h *Handler) GenerateAdCopy(c *fiber.Ctx) error {
	var req prompts.AdCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateAdCopy(c.Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	if gen.ParseError {
		return c.JSON(fiber.Map{"success": true, "raw": gen.Raw, "parseError": true, "usage": gen.Usage})
	}
	// Ad copy comes back as a JSON array of variations.
	return c.JSON(fiber.Map{"success": true, "ads": gen.Data, "usage": gen.Usage})
}

// GenerateVideoScript handles POST /generate/video-script.
func (h *Handler) GenerateVideoScript(c *fiber.Ctx) error {
	var req prompts.VideoScriptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateVideoScript(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTopicRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return upstreamError(c, err)
	}
	return respondGeneration(c, gen, nil)
}

// GenerateCanvaBrief handles POST /generate/canva-brief.
func (h *Handler) GenerateCanvaBrief(c *fiber.Ctx) error {
	var req prompts.CanvaBriefRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateCanvaBrief(c.Context(), req)
	if err != nil {
		return upstreamError(c, err)
	}
	return respondGeneration(c, gen, nil)
}

// WeeklyCalendar handles POST /calendar/weekly.
func (h *Handler) WeeklyCalendar(c *fiber.Ctx) error {
	var req struct {
		WeekStart string `json:"weekStart"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	gen, err := h.service.GenerateWeeklyCalendar(c.Context(), req.WeekStart)
	if err != nil {
		return upstreamError(c, err)
	}
	return respondGeneration(c, gen, fiber.Map{"weekStart": req.WeekStart})
}

// MonthlyCalendar handles POST /calendar/monthly.
func (h *Handler) MonthlyCalendar(c *fiber.Ctx) error {
	var req struct {
		Month string `json:"month"`
	}
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	weeks, err := h.service.GenerateMonthlyCalendar(c.Context(), req.Month)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "month": req.Month, "weeks": weeks})
}

// respondGeneration spreads a parsed generation's fields into the response,
// or returns the raw text with a parseError marker when parsing failed.
func respondGeneration(c *fiber.Ctx, gen *Generation, extra fiber.Map) error {
	resp := fiber.Map{"success": true}
	for k, v := range extra {
		resp[k] = v
	}
	if gen.ParseError {
		resp["raw"] = gen.Raw
		resp["parseError"] = true
	} else {
		var fields map[string]any
		if err := json.Unmarshal(gen.Data, &fields); err == nil {
			for k, v := range fields {
				resp[k] = v
			}
		} else {
			resp["data"] = gen.Data
		}
	}
	resp["usage"] = gen.Usage
	return c.JSON(resp)
}

func upstreamError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
