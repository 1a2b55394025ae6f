package route

import (
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/reports/controller"
	"floodwatch_backend/internals/middlewares"
)

// Public intake surface: challenge issuance + submission. No auth.
func SubmissionPublicRoutes(api fiber.Router, ctrl *controller.SubmissionController) {
	api.Get("/captcha", ctrl.IssueCaptcha)
	api.Post("/submit", middlewares.SubmitRateLimiter(), ctrl.Submit)
}
