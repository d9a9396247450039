package product

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the public catalog endpoints. Mutations go through
// the admin handler only.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List(Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(p)
}
