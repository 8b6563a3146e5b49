package chat

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

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/chat/sessions", h.createSession)
	app.Get("/api/v1/chat/sessions/:id", h.getSession)
	app.Post("/api/v1/chat/sessions/:id/messages", h.sendMessage)
	app.Get("/api/v1/chat/quick-replies", h.getQuickReplies)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.service.CreateSession())
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
	}
	return c.JSON(session)
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) sendMessage(c *fiber.Ctx) error {
	payload := new(sendMessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	session, err := h.service.Send(c.Context(), c.Params("id"), payload.Text)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(session)
}

func (h *Handler) getQuickReplies(c *fiber.Ctx) error {
	return c.JSON(QuickReplies)
}
