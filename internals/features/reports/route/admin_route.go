package route

import (
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/reports/controller"
)

// Moderation surface; the caller mounts this behind the admin auth
// middleware.
func SubmissionAdminRoutes(admin fiber.Router, ctrl *controller.SubmissionController) {
	admin.Get("/submissions", ctrl.List)
	admin.Get("/submission/:id", ctrl.GetByID)
	admin.Delete("/submission/:id", ctrl.Delete)
	admin.Post("/verify/:id", ctrl.Verify)
	admin.Get("/export.json", ctrl.ExportJSON)
	admin.Get("/export.csv", ctrl.ExportCSV)
}
