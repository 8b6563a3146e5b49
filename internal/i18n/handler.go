package i18n

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/language", h.getLanguage)
	app.Post("/api/v1/language/toggle", h.toggleLanguage)
	app.Get("/api/v1/translations/:locale", h.getTranslations)
}

func (h *Handler) getLanguage(c *fiber.Ctx) error {
	locale := h.service.Current()
	return c.JSON(fiber.Map{"language": locale, "dir": Direction(locale)})
}

func (h *Handler) toggleLanguage(c *fiber.Ctx) error {
	locale := h.service.Toggle()
	return c.JSON(fiber.Map{"language": locale, "dir": Direction(locale)})
}

func (h *Handler) getTranslations(c *fiber.Ctx) error {
	table, ok := Table(c.Params("locale"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "unsupported locale"})
	}
	return c.JSON(table)
}
