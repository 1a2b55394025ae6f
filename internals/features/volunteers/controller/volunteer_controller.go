package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/features/volunteers/dto"
	"floodwatch_backend/internals/features/volunteers/model"
	helper "floodwatch_backend/internals/helpers"
	"floodwatch_backend/internals/storage/docstore"
)

var validateVolunteer = validator.New()

type VolunteerController struct {
	Store *docstore.Store[model.VolunteerModel]
}

func NewVolunteerController(store *docstore.Store[model.VolunteerModel]) *VolunteerController {
	return &VolunteerController{Store: store}
}

// =======================
// ➕ Public: register
// =======================
func (ctrl *VolunteerController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and phone are required")
	}
	body.Username = strings.TrimSpace(body.Username)
	body.Phone = strings.TrimSpace(body.Phone)
	body.Availability = strings.TrimSpace(body.Availability)

	if err := validateVolunteer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and phone are required")
	}
	if dto.CountDigits(body.Phone) < 10 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Valid phone number required")
	}

	now := time.Now()
	id := "vol_" + now.Format("20060102150405") + "_" + helper.RandomSuffix()
	vol := &model.VolunteerModel{
		ID:           id,
		Username:     body.Username,
		Phone:        body.Phone,
		Skills:       body.Skills,
		Availability: body.Availability,
		RegisteredAt: helper.ISOTimestamp(now),
		Status:       "active",
	}
	if vol.Skills == nil {
		vol.Skills = []string{}
	}

	if err := ctrl.Store.Create(id, vol); err != nil {
		log.Printf("[ERROR] volunteer register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, fiber.Map{"id": id})
}

// =======================
// 🔑 Public: login by phone lookup
// =======================
func (ctrl *VolunteerController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Phone number required")
	}
	body.Phone = strings.TrimSpace(body.Phone)
	if body.Phone == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Phone number required")
	}

	matches, err := ctrl.Store.List(func(v *model.VolunteerModel) bool {
		return v.Phone == body.Phone
	})
	if err != nil {
		log.Printf("[ERROR] volunteer login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	if len(matches) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
	}
	return helper.JsonOK(c, fiber.Map{"volunteer": matches[0]})
}

// =======================
// 📄 Admin: list volunteers
// =======================
func (ctrl *VolunteerController) AdminList(c *fiber.Ctx) error {
	items, err := ctrl.Store.List(nil)
	if err != nil {
		log.Printf("[ERROR] volunteers list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}
