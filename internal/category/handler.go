package category

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.getCategories)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(categories)
}
