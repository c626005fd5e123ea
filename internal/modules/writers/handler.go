package writers

import (
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

// GenerateArticle handles POST /writers-engine/article.
func (h *Handler) GenerateArticle(c *fiber.Ctx) error {
	var req prompts.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.GenerateArticle(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTopicRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"article":      result.Article,
		"title":        result.Title,
		"publication":  result.Publication,
		"model":        result.Model,
		"articleType":  result.ArticleType,
		"wordEstimate": result.WordEstimate,
		"usage":        result.Usage,
	})
}

// QualityCheck handles POST /writers-engine/quality-check.
func (h *Handler) QualityCheck(c *fiber.Ctx) error {
	var req struct {
		Article string `json:"article"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.RunQualityCheck(c.Context(), req.Article)
	if err != nil {
		if errors.Is(err, ErrArticleRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"qualityCheck": result,
	})
}

// ListPublications handles GET /writers-engine/publications.
func (h *Handler) ListPublications(c *fiber.Ctx) error {
	list := h.service.ListPublications()
	return c.JSON(fiber.Map{
		"publications": list,
		"total":        len(list),
	})
}
