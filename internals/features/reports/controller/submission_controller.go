package controller

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/configs"
	"floodwatch_backend/internals/features/reports/dto"
	"floodwatch_backend/internals/features/reports/model"
	"floodwatch_backend/internals/features/reports/service"
	helper "floodwatch_backend/internals/helpers"
	"floodwatch_backend/internals/storage/docstore"
)

var validateSubmission = validator.New()

type SubmissionController struct {
	Cfg       *configs.Config
	Store     *docstore.Store[model.SubmissionModel]
	Images    *service.ImageService
	Captcha   *service.CaptchaService
	Recaptcha *service.RecaptchaService
	Export    *service.ExportService
}

func NewSubmissionController(
	cfg *configs.Config,
	store *docstore.Store[model.SubmissionModel],
	images *service.ImageService,
	captcha *service.CaptchaService,
	recaptcha *service.RecaptchaService,
	export *service.ExportService,
) *SubmissionController {
	return &SubmissionController{
		Cfg:       cfg,
		Store:     store,
		Images:    images,
		Captcha:   captcha,
		Recaptcha: recaptcha,
		Export:    export,
	}
}

// =======================
// 🔢 Issue arithmetic challenge
// =======================
func (ctrl *SubmissionController) IssueCaptcha(c *fiber.Ctx) error {
	a, b, token := ctrl.Captcha.Issue()
	return c.JSON(fiber.Map{"a": a, "b": b, "token": token})
}

// =======================
// 📨 Public submission intake
// =======================
func (ctrl *SubmissionController) Submit(c *fiber.Ctx) error {
	doc := dto.SubmissionFromForm(c)

	recaptchaToken := strings.TrimSpace(c.FormValue("g-recaptcha-response"))
	if recaptchaToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please complete the reCAPTCHA verification")
	}
	if err := ctrl.Recaptcha.Verify(c.UserContext(), recaptchaToken); err != nil {
		if errors.Is(err, service.ErrRecaptchaRejected) {
			return helper.JsonError(c, fiber.StatusBadRequest, "reCAPTCHA verification failed. Please try again.")
		}
		log.Printf("[ERROR] recaptcha verify: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error occurred. Please try again.")
	}

	answer := strings.TrimSpace(c.FormValue("captcha_answer"))
	token := strings.TrimSpace(c.FormValue("captcha_token"))
	if !ctrl.Captcha.Verify(answer, token) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Captcha verification failed")
	}

	now := time.Now()
	id := helper.NewRecordID(now)

	// Photo is optional; image and thumbnail share the record's own
	// timestamp+suffix pair.
	if photo, err := c.FormFile("photo"); err == nil && photo != nil {
		imagePath, thumbPath, err := ctrl.Images.Accept(photo, id)
		if err != nil {
			log.Printf("[ERROR] submit: store image: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Server error occurred. Please try again.")
		}
		doc.ImagePath = imagePath
		doc.ThumbnailPath = thumbPath
	}

	doc.ID = id
	doc.ReceivedAt = helper.ISOTimestamp(now)
	doc.VerificationStatus = model.StatusPending

	if err := ctrl.Store.Create(id, doc); err != nil {
		log.Printf("[ERROR] submit: persist record: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error occurred. Please try again.")
	}

	return helper.JsonOK(c, fiber.Map{"id": id})
}

// =======================
// 📄 Admin: list with status filter
// Query: ?filter=all|valid|invalid|pending
// =======================
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	filter := strings.ToLower(c.Query("filter", "all"))

	var pred func(*model.SubmissionModel) bool
	if filter != "all" {
		pred = func(s *model.SubmissionModel) bool { return s.VerificationStatus == filter }
	}

	docs, err := ctrl.Store.List(pred)
	if err != nil {
		log.Printf("[ERROR] list submissions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	items := make([]dto.SubmissionListItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, dto.ToSubmissionListItem(d))
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

// =======================
// 🔍 Admin: single submission
// =======================
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	doc, err := ctrl.Store.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] get submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(doc)
}

// =======================
// 🗑 Admin: delete submission + owned files
// =======================
func (ctrl *SubmissionController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	doc, err := ctrl.Store.Get(id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] delete submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	// Remove dependents first so the record never outlives them only in
	// one direction. Missing files are fine (already gone).
	ctrl.removeOwnedFile(doc.ImagePath)
	ctrl.removeOwnedFile(doc.ThumbnailPath)

	if err := ctrl.Store.Delete(id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] delete submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, fiber.Map{"deleted": id})
}

func (ctrl *SubmissionController) removeOwnedFile(rel *string) {
	if rel == nil || *rel == "" {
		return
	}
	path := filepath.Join(ctrl.Cfg.BaseDir, filepath.FromSlash(*rel))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] remove owned file %s: %v", path, err)
	}
}

// =======================
// ✅ Admin: verification transition
// Body: {"status": "valid" | "invalid"}
// =======================
func (ctrl *SubmissionController) Verify(c *fiber.Ctx) error {
	var body dto.VerifyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status must be valid or invalid")
	}
	body.Status = strings.TrimSpace(body.Status)
	if err := validateSubmission.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status must be valid or invalid")
	}

	_, err := ctrl.Store.Update(c.Params("id"), func(s *model.SubmissionModel) error {
		s.VerificationStatus = body.Status
		// Overwritten on every transition, repeats included.
		now := helper.ISOTimestamp(time.Now())
		s.VerifiedAt = &now
		return nil
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		log.Printf("[ERROR] verify submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, fiber.Map{"status": body.Status})
}

// =======================
// 📤 Admin: export
// =======================
func (ctrl *SubmissionController) ExportJSON(c *fiber.Ctx) error {
	items, err := ctrl.Export.All()
	if err != nil {
		log.Printf("[ERROR] export json: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(items)
}

func (ctrl *SubmissionController) ExportCSV(c *fiber.Ctx) error {
	out, err := ctrl.Export.CSV()
	if err != nil {
		log.Printf("[ERROR] export csv: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=submissions.csv")
	return c.Send(out)
}
