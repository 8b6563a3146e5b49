package content

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/carmelyp/aircon-backend/internal/i18n"
)

type Handler struct {
	store  *Store
	locale *i18n.Service
}

func NewHandler(store *Store, locale *i18n.Service) *Handler {
	return &Handler{store: store, locale: locale}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/content", h.getContent)
	app.Get("/api/v1/content/posts", h.getPosts)
	app.Get("/api/v1/content/posts/:slug", h.getPostBySlug)
	app.Get("/api/v1/content/faqs", h.getFAQs)
	app.Post("/api/v1/leads", h.createContactLead)
	app.Post("/api/v1/service-requests", h.createServiceRequest)
}

// RegisterAdminRoutes must be called after the JWT middleware is installed.
func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Put("/api/v1/admin/content/:section", h.updateSection)
	app.Post("/api/v1/admin/content/:section", h.addItem)
	app.Put("/api/v1/admin/content/:section/:id", h.updateItem)
	app.Delete("/api/v1/admin/content/:section/:id", h.deleteItem)
	app.Post("/api/v1/admin/leads", h.createManualLead)
}

func (h *Handler) getContent(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}

func (h *Handler) getPosts(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot().Posts)
}

func (h *Handler) getPostBySlug(c *fiber.Ctx) error {
	post, ok := h.store.FindPostBySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Post not found"})
	}
	return c.JSON(post)
}

func (h *Handler) getFAQs(c *fiber.Ctx) error {
	defaultCategory := i18n.T(h.locale.Current(), "faq.defaultCategory", "כללי")
	return c.JSON(h.store.GroupFAQs(defaultCategory))
}

type contactLeadRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	Message         *string `json:"message,omitempty"`
	ResidentialArea *string `json:"residentialArea,omitempty"`
}

func (h *Handler) createContactLead(c *fiber.Ctx) error {
	payload := new(contactLeadRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	lead := h.store.AddLead(NewLeadData{
		Name:            payload.Name,
		Phone:           payload.Phone,
		Email:           payload.Email,
		Message:         payload.Message,
		Source:          LeadSourceContactForm,
		ResidentialArea: payload.ResidentialArea,
	})
	return c.Status(fiber.StatusCreated).JSON(lead)
}

type serviceRequestRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	ServiceType string  `json:"serviceType"`
	Description string  `json:"description"`
}

func (h *Handler) createServiceRequest(c *fiber.Ctx) error {
	payload := new(serviceRequestRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	message := fmt.Sprintf("Service: %s. Description: %s", payload.ServiceType, payload.Description)
	lead := h.store.AddLead(NewLeadData{
		Name:            payload.Name,
		Phone:           payload.Phone,
		Email:           payload.Email,
		Message:         &message,
		Source:          LeadSourceServiceRequest,
		ResidentialArea: payload.Address,
	})
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *Handler) createManualLead(c *fiber.Ctx) error {
	payload := new(contactLeadRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	lead := h.store.AddLead(NewLeadData{
		Name:            payload.Name,
		Phone:           payload.Phone,
		Email:           payload.Email,
		Message:         payload.Message,
		Source:          LeadSourceManual,
		ResidentialArea: payload.ResidentialArea,
	})
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *Handler) updateSection(c *fiber.Ctx) error {
	switch c.Params("section") {
	case "hero":
		payload := new(Hero)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		h.store.UpdateHero(*payload)
		return c.JSON(h.store.Snapshot().Hero)
	case "about":
		payload := new(AboutContent)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		h.store.UpdateAbout(*payload)
		// re-read so the response carries any backfilled certificate ids
		return c.JSON(h.store.Snapshot().About)
	case "contact":
		payload := new(ContactContent)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		h.store.UpdateContact(*payload)
		return c.JSON(h.store.Snapshot().Contact)
	case "social":
		payload := new(SocialLinks)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		h.store.UpdateSocial(*payload)
		return c.JSON(h.store.Snapshot().Social)
	case "averageRating":
		payload := new(AverageRatingData)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		h.store.UpdateAverageRating(*payload)
		return c.JSON(h.store.Snapshot().AverageRating)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	switch c.Params("section") {
	case "services":
		payload := new(Service)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(h.store.AddService(*payload))
	case "products":
		payload := new(Product)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(h.store.AddProduct(*payload))
	case "testimonials":
		payload := new(Testimonial)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(h.store.AddTestimonial(*payload))
	case "posts":
		payload := new(Post)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(h.store.AddPost(*payload))
	case "faqs":
		payload := new(FAQItem)
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(h.store.AddFAQ(*payload))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	switch c.Params("section") {
	case "services":
		patch := new(ServicePatch)
		if err := c.BodyParser(patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if updated, ok := h.store.UpdateService(id, *patch); ok {
			return c.JSON(updated)
		}
	case "products":
		patch := new(ProductPatch)
		if err := c.BodyParser(patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if updated, ok := h.store.UpdateProduct(id, *patch); ok {
			return c.JSON(updated)
		}
	case "testimonials":
		patch := new(TestimonialPatch)
		if err := c.BodyParser(patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if updated, ok := h.store.UpdateTestimonial(id, *patch); ok {
			return c.JSON(updated)
		}
	case "posts":
		patch := new(PostPatch)
		if err := c.BodyParser(patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if updated, ok := h.store.UpdatePost(id, *patch); ok {
			return c.JSON(updated)
		}
	case "faqs":
		patch := new(FAQPatch)
		if err := c.BodyParser(patch); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		if updated, ok := h.store.UpdateFAQ(id, *patch); ok {
			return c.JSON(updated)
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Item not found"})
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	id := c.Params("id")
	switch c.Params("section") {
	case "services":
		h.store.DeleteService(id)
	case "products":
		h.store.DeleteProduct(id)
	case "testimonials":
		h.store.DeleteTestimonial(id)
	case "posts":
		h.store.DeletePost(id)
	case "faqs":
		h.store.DeleteFAQ(id)
	case "leads":
		h.store.DeleteLead(id)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
	// deleting an id that no longer exists is a no-op, same answer either way
	return c.SendStatus(fiber.StatusNoContent)
}
