package route

import (
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/users/auth/controller"
	"floodwatch_backend/internals/middlewares"
)

func AuthRoutes(admin fiber.Router, ctrl *controller.AuthController) {
	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Post("/logout", ctrl.Logout)
}
