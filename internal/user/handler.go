package user

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// CookieName holds the session token for browser clients; API clients
// may send the same token as a bearer header instead.
const CookieName = "token"

const sessionTTL = 24 * time.Hour

type Handler struct {
	service *Service
	secret  []byte
}

func NewHandler(service *Service, secret []byte) *Handler {
	return &Handler{service: service, secret: secret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/register", h.register)
	app.Post("/api/login", h.login)
	app.Post("/api/logout", h.logout)
	app.Get("/api/user", h.currentUser)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := h.service.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		switch err {
		case ErrMissingFields:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		case ErrEmailExists:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User already exists"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
		}
	}

	token, err := h.issueToken(created)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}
	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    created.Public(),
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	u, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := h.issueToken(u)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}
	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    u.Public(),
		"token":   token,
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// currentUser reports the authenticated user, or {"user": null} for
// anonymous requests. It never responds 401.
func (h *Handler) currentUser(c *fiber.Ctx) error {
	claims, ok := ParseToken(c, h.secret)
	if !ok {
		return c.JSON(fiber.Map{"user": nil})
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return c.JSON(fiber.Map{"user": nil})
	}

	u, err := h.service.GetByID(id)
	if err != nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": u.Public()})
}

func (h *Handler) issueToken(u User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
	})
}

// ParseToken reads and verifies a session token from the Authorization
// header or the session cookie. It is used by endpoints that treat
// authentication as optional.
func ParseToken(c *fiber.Ctx, secret []byte) (jwt.MapClaims, bool) {
	raw := ""
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		raw = strings.TrimPrefix(auth, "Bearer ")
	} else if v := c.Cookies(CookieName); v != "" {
		raw = v
	}
	if raw == "" {
		return nil, false
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	return claims, ok
}

// GetUserIDFromCtx extracts the user_id claim from the JWT token stored
// in c.Locals("user") by the auth middleware. Cart and order handlers
// share it.
func GetUserIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if id, ok := claims["user_id"].(string); ok && id != "" {
		return id, nil
	}
	return "", fiber.ErrUnauthorized
}
