package controller

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/configs"
	"floodwatch_backend/internals/features/users/auth/service"
	helper "floodwatch_backend/internals/helpers"
)

const CookieName = "admin_token"

type AuthController struct {
	Cfg    *configs.Config
	Tokens *service.TokenService
}

func NewAuthController(cfg *configs.Config, tokens *service.TokenService) *AuthController {
	return &AuthController{Cfg: cfg, Tokens: tokens}
}

// CheckCredentials compares against the single configured operator
// credential pair in constant time.
func CheckCredentials(cfg *configs.Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPass)) == 1
	return userOK && passOK
}

// =======================
// 🔑 Admin login → JWT in httpOnly cookie
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	username := strings.TrimSpace(body.Username)
	password := strings.TrimSpace(body.Password)

	if !CheckCredentials(ctrl.Cfg, username, password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ctrl.Tokens.Issue(username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   int(ctrl.Tokens.TTL() / time.Second),
	})
	return helper.JsonOK(c, fiber.Map{"message": "Login successful"})
}

// =======================
// 🚪 Admin logout → clear cookie
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, fiber.Map{"message": "Logged out"})
}
