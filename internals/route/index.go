// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/configs"

	intelController "floodwatch_backend/internals/features/intel/controller"
	intelModel "floodwatch_backend/internals/features/intel/model"
	intelRoute "floodwatch_backend/internals/features/intel/route"
	intelService "floodwatch_backend/internals/features/intel/service"
	reportController "floodwatch_backend/internals/features/reports/controller"
	reportModel "floodwatch_backend/internals/features/reports/model"
	reportRoute "floodwatch_backend/internals/features/reports/route"
	reportService "floodwatch_backend/internals/features/reports/service"
	authController "floodwatch_backend/internals/features/users/auth/controller"
	authRoute "floodwatch_backend/internals/features/users/auth/route"
	authService "floodwatch_backend/internals/features/users/auth/service"
	volunteerController "floodwatch_backend/internals/features/volunteers/controller"
	volunteerModel "floodwatch_backend/internals/features/volunteers/model"
	volunteerRoute "floodwatch_backend/internals/features/volunteers/route"

	authMiddleware "floodwatch_backend/internals/middlewares/auth"
	"floodwatch_backend/internals/storage/docstore"
)

// SetupRoutes builds every store, service and controller from cfg and
// mounts the full API surface.
func SetupRoutes(app *fiber.App, cfg *configs.Config) error {
	if err := cfg.EnsureDataDirs(); err != nil {
		return err
	}

	// ===================== STORES =====================
	submissions := docstore.New[reportModel.SubmissionModel](cfg.SubmissionsDir(), "", reportModel.NormalizeSubmission)
	volunteers := docstore.New[volunteerModel.VolunteerModel](cfg.VolunteersDir(), "", volunteerModel.NormalizeVolunteer)
	intel := docstore.New[intelModel.IntelModel](cfg.IntelDir(), "x_intel_", nil)
	news := docstore.New[intelModel.NewsModel](cfg.ScrapedNewsDir(), "", nil)

	// ===================== SERVICES =====================
	tokens := authService.NewTokenService(cfg.JWTSecret)
	captcha := reportService.NewCaptchaService(cfg.CaptchaSecret)
	recaptcha := reportService.NewRecaptchaService(cfg.RecaptchaSecret)
	images := reportService.NewImageService(cfg.ImagesDir(), cfg.ThumbnailsDir())
	export := reportService.NewExportService(submissions)
	xSearch := intelService.NewXSearchService(cfg.XBearerToken)
	openRouter := intelService.NewOpenRouterService(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	aiProxy := intelService.NewAIProxyService(cfg.AIAPIBase)

	// ===================== CONTROLLERS =====================
	authCtrl := authController.NewAuthController(cfg, tokens)
	submissionCtrl := reportController.NewSubmissionController(cfg, submissions, images, captcha, recaptcha, export)
	volunteerCtrl := volunteerController.NewVolunteerController(volunteers)
	intelCtrl := intelController.NewIntelController(cfg, intel, news, xSearch, openRouter, aiProxy)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	api := app.Group("/api")
	reportRoute.SubmissionPublicRoutes(api, submissionCtrl)
	volunteerRoute.VolunteerPublicRoutes(api.Group("/volunteer"), volunteerCtrl)

	// Stored images are public so list views can render thumbnails.
	app.Static("/crowd_data/images", cfg.ImagesDir())
	app.Static("/crowd_data/thumbnails", cfg.ThumbnailsDir())

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/admin")
	authRoute.AuthRoutes(admin, authCtrl)

	protected := admin.Group("", authMiddleware.AdminAuth(cfg, tokens))
	reportRoute.SubmissionAdminRoutes(protected, submissionCtrl)
	volunteerRoute.VolunteerAdminRoutes(protected, volunteerCtrl)
	intelRoute.IntelAdminRoutes(protected, intelCtrl)

	return nil
}
