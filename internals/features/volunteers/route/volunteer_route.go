package route

import (
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/volunteers/controller"
)

func VolunteerPublicRoutes(api fiber.Router, ctrl *controller.VolunteerController) {
	api.Post("/register", ctrl.Register)
	api.Post("/login", ctrl.Login)
}

func VolunteerAdminRoutes(admin fiber.Router, ctrl *controller.VolunteerController) {
	admin.Get("/volunteers", ctrl.AdminList)
}
