package admin

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-in", h.signIn)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/sign-out", h.signOut)
	app.Put("/api/v1/admin/credentials", h.updateCredentials)
	app.Get("/api/v1/admin/session", h.getSession)
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Login(payload.Username, payload.Password); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	}

	claims := jwt.MapClaims{
		"sub": payload.Username,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
	})
}

func (h *Handler) signOut(c *fiber.Ctx) error {
	h.service.Logout()
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *Handler) updateCredentials(c *fiber.Ctx) error {
	payload := new(credentialsRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Username == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	h.service.UpdateCredentials(payload.Username, payload.Password)
	return c.JSON(fiber.Map{"message": "Credentials updated"})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"authenticated": h.service.IsAuthenticated()})
}
