package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/imsanjayr/ShopVerse/internal/order"
	"github.com/imsanjayr/ShopVerse/internal/product"
	"github.com/imsanjayr/ShopVerse/internal/user"
)

const sessionTTL = 24 * time.Hour

// Handler serves the back-office API. Product and order mutations are
// delegated to the same services the storefront reads from.
type Handler struct {
	service  *Service
	products *product.Service
	orders   *order.Service
	secret   []byte
}

func NewHandler(service *Service, products *product.Service, orders *order.Service, secret []byte) *Handler {
	return &Handler{service: service, products: products, orders: orders, secret: secret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/admin/login", h.login)
	app.Post("/api/admin/logout", h.logout)
	app.Get("/api/admin/status", h.status)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/admin/stats", h.stats)
	app.Get("/api/admin/products", h.listProducts)
	app.Post("/api/admin/products", h.createProduct)
	app.Put("/api/admin/products/:id", h.updateProduct)
	app.Delete("/api/admin/products/:id", h.deleteProduct)
	app.Get("/api/admin/orders", h.listOrders)
	app.Put("/api/admin/orders/:id/status", h.updateOrderStatus)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Username == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	a, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	claims := jwt.MapClaims{
		"admin_id": a.ID,
		"username": a.Username,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     user.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "Admin login successful",
		"admin":   a.Public(),
		"token":   signed,
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     user.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Admin logout successful"})
}

// status reports the authenticated admin, or {"admin": null}. Like
// GET /api/user it never responds 401.
func (h *Handler) status(c *fiber.Ctx) error {
	claims, ok := user.ParseToken(c, h.secret)
	if !ok {
		return c.JSON(fiber.Map{"admin": nil})
	}
	id, _ := claims["admin_id"].(string)
	if id == "" {
		return c.JSON(fiber.Map{"admin": nil})
	}
	username, _ := claims["username"].(string)
	return c.JSON(fiber.Map{"admin": Public{ID: id, Username: username}})
}

func (h *Handler) stats(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(stats)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	products, err := h.products.List(product.Filter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(products)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	payload := new(product.CreateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.products.Create(*payload)
	if err != nil {
		switch err {
		case product.ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Product created successfully", "product": created})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	payload := new(product.UpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := h.products.Update(c.Params("id"), *payload)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully", "product": updated})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	if err := h.products.Delete(c.Params("id")); err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	orders, err := h.orders.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}
	return c.JSON(orders)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(c *fiber.Ctx) error {
	if _, err := GetAdminIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin authentication required"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status is required"})
	}

	updated, err := h.orders.SetStatus(c.Params("id"), payload.Status)
	if err != nil {
		switch err {
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		case order.ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown order status"})
		case order.ErrInvalidTransition:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status transition"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}
	return c.JSON(fiber.Map{"message": "Order status updated", "order": updated})
}

// GetAdminIDFromCtx extracts the admin_id claim from the JWT token
// stored by the auth middleware. User tokens pass the middleware but
// carry no admin_id, so they are rejected here.
func GetAdminIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if id, ok := claims["admin_id"].(string); ok && id != "" {
		return id, nil
	}
	return "", fiber.ErrUnauthorized
}
