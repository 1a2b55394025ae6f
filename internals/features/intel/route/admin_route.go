package route

import (
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/intel/controller"
)

// All intel/AI endpoints are operator-only; mount behind admin auth.
func IntelAdminRoutes(admin fiber.Router, ctrl *controller.IntelController) {
	admin.Post("/crawl", ctrl.Crawl)
	admin.Post("/ai/search", ctrl.AISearch)
	admin.Post("/ai/extract", ctrl.AIExtract)
	admin.Post("/ai/news/save", ctrl.SaveNews)
	admin.Get("/ai/news", ctrl.ListNews)
	admin.Delete("/ai/news/:id", ctrl.DeleteNews)
}
