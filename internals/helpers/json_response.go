package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Response helpers for the public wire contract. Success bodies carry
// {"ok": true, ...}, failures carry {"error": message} — field names are
// the stable contract with existing clients, keep them exact.

// ✅ Success response, default 200
func JsonOK(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// ❌ Error response
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Server error"
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ❌ Error response with extra detail fields (e.g. upstream body)
func JsonErrorWithDetail(c *fiber.Ctx, status int, message, detail string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":  message,
		"detail": detail,
	})
}
