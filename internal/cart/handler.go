package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/imsanjayr/ShopVerse/internal/product"
	"github.com/imsanjayr/ShopVerse/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart/add", h.addItem)
	app.Put("/api/cart/update", h.updateItem)
	app.Delete("/api/cart/remove/:productId", h.removeItem)
}

type itemRequest struct {
	ProductID string `json:"productId"`
	// pointer so an omitted quantity is distinguishable from zero
	Quantity *int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	items, err := h.service.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(items)
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.ProductID == "" || payload.Quantity == nil || *payload.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID and quantity are required"})
	}

	if err := h.service.Add(userID, payload.ProductID, *payload.Quantity); err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Item added to cart"})
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.ProductID == "" || payload.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product ID and valid quantity are required"})
	}

	if err := h.service.SetQuantity(userID, payload.ProductID, *payload.Quantity); err != nil {
		switch err {
		case ErrCartNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
		case ErrItemNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in cart"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	if err := h.service.Remove(userID, c.Params("productId")); err != nil {
		switch err {
		case ErrCartNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}
