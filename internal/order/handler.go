package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/imsanjayr/ShopVerse/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.getOrders)
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	payload := new(ShippingInfo)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ord, err := h.service.Place(userID, *payload)
	if err != nil {
		switch err {
		case ErrMissingShippingInfo:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All shipping fields are required"})
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cart is empty"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}

	return c.JSON(fiber.Map{"message": "Order created successfully", "order": ord})
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(orders)
}
