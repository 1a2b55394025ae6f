// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/configs"
	authController "floodwatch_backend/internals/features/users/auth/controller"
	authService "floodwatch_backend/internals/features/users/auth/service"
	helper "floodwatch_backend/internals/helpers"
)

// AdminAuth gates every moderation endpoint. Two independent proofs are
// accepted, alternate not layered: a valid session token in the
// admin_token cookie, or the configured credentials via a Basic
// Authorization header. Either one suffices on its own.
func AdminAuth(cfg *configs.Config, tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(authController.CookieName); token != "" {
			err := tokens.Validate(token)
			if err == nil {
				return c.Next()
			}
			// Expired vs. malformed matters for diagnostics only; both
			// fall through to the Basic-credential path.
			if errors.Is(err, authService.ErrTokenExpired) {
				log.Printf("[WARN] admin auth: token expired for %s %s", c.Method(), c.OriginalURL())
			} else {
				log.Printf("[WARN] admin auth: invalid token for %s %s", c.Method(), c.OriginalURL())
			}
		}

		if user, pass, ok := parseBasicAuth(c.Get(fiber.HeaderAuthorization)); ok {
			if authController.CheckCredentials(cfg, user, pass) {
				return c.Next()
			}
		}

		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	creds := strings.SplitN(string(raw), ":", 2)
	if len(creds) != 2 {
		return "", "", false
	}
	return creds[0], creds[1], true
}
