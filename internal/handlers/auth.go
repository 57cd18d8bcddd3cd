package handlers

import (
	"crypto/subtle"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/cafeshop/internal/config"
	"github.com/example/cafeshop/internal/middleware"
	"github.com/example/cafeshop/internal/models"
	"github.com/example/cafeshop/internal/store"
	"github.com/example/cafeshop/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	users *store.UserStore
	cfg   *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users *store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// Signup registers a new user account.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req utils.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateSignup(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	if _, err := h.users.FindByEmailOrPhone(req.Email, req.Phone); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  []string{"User with this email or phone number already exists"},
		})
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	}

	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"errors":  []string{"User with this email or phone number already exists"},
			})
		}
		return err
	}

	log.Printf("new user registered: %s", user.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
	})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin authenticates a user or the configured admin and sets the session
// cookie.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req signinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	if h.isAdmin(req.Email, req.Password) {
		claims := utils.Claims{
			UserID: utils.AdminUserID,
			Name:   "Admin",
			Email:  h.cfg.AdminEmail,
			Phone:  "",
			Role:   "admin",
		}

		token, err := utils.GenerateToken(h.cfg.JWTSecret, claims, h.cfg.TokenExpires)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
		}
		h.setTokenCookie(c, token)

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Admin signed in successfully",
			"data": fiber.Map{
				"userId": utils.AdminUserID,
				"name":   "Admin",
				"email":  h.cfg.AdminEmail,
				"phone":  "",
				"role":   "admin",
				"token":  token,
			},
		})
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
	}

	claims := utils.Claims{
		UserID: user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		Role:   "user",
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, claims, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}
	h.setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"userId": user.ID,
			"name":   user.Name,
			"email":  user.Email,
			"phone":  user.Phone,
			"role":   "user",
			"token":  token,
		},
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		Secure:   h.cfg.Production(),
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User logout successful",
	})
}

// isAdmin checks the credentials against the server-configured admin pair
// using constant-time comparison.
func (h *AuthHandler) isAdmin(email, password string) bool {
	if h.cfg.AdminEmail == "" || h.cfg.AdminPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(h.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	return emailOK && passOK
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		Path:     "/",
		Secure:   h.cfg.Production(),
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
