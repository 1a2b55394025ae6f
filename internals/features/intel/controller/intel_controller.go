package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"floodwatch_backend/internals/configs"
	"floodwatch_backend/internals/features/intel/model"
	"floodwatch_backend/internals/features/intel/service"
	helper "floodwatch_backend/internals/helpers"
	"floodwatch_backend/internals/storage/docstore"
)

const (
	aiSearchTimeout  = 60 * time.Second
	aiExtractTimeout = 120 * time.Second
)

var defaultHashtags = []string{"#flood", "#urbanflood"}

type IntelController struct {
	Cfg        *configs.Config
	IntelStore *docstore.Store[model.IntelModel]
	NewsStore  *docstore.Store[model.NewsModel]
	XSearch    *service.XSearchService
	OpenRouter *service.OpenRouterService
	AIProxy    *service.AIProxyService
}

func NewIntelController(
	cfg *configs.Config,
	intelStore *docstore.Store[model.IntelModel],
	newsStore *docstore.Store[model.NewsModel],
	xSearch *service.XSearchService,
	openRouter *service.OpenRouterService,
	aiProxy *service.AIProxyService,
) *IntelController {
	return &IntelController{
		Cfg:        cfg,
		IntelStore: intelStore,
		NewsStore:  newsStore,
		XSearch:    xSearch,
		OpenRouter: openRouter,
		AIProxy:    aiProxy,
	}
}

// =======================
// 🕸 Crawl X + summarize
// =======================
func (ctrl *IntelController) Crawl(c *fiber.Ctx) error {
	if !ctrl.XSearch.Enabled() {
		return helper.JsonError(c, fiber.StatusBadRequest, "X_BEARER_TOKEN not configured")
	}

	var body struct {
		Hashtags []string `json:"hashtags"`
	}
	_ = c.BodyParser(&body)
	hashtags := body.Hashtags
	if len(hashtags) == 0 {
		hashtags = defaultHashtags
	}

	tweets, err := ctrl.XSearch.SearchRecent(c.UserContext(), hashtags)
	if err != nil {
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			return helper.JsonErrorWithDetail(c, upstream.Status, "X API error", upstream.Body)
		}
		log.Printf("[ERROR] crawl: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	summary := ctrl.OpenRouter.Summarize(c.UserContext(), tweets)

	now := time.Now()
	id := helper.NewRecordID(now)
	intel := &model.IntelModel{
		ID:          id,
		Source:      "x_search_recent",
		Query:       hashtags,
		CollectedAt: helper.ISOTimestamp(now),
		Tweets:      tweets,
		Summary:     summary,
	}
	if err := ctrl.IntelStore.Create(id, intel); err != nil {
		log.Printf("[ERROR] crawl: persist intel: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonOK(c, fiber.Map{"saved": "crowd_data/intel/x_intel_" + id + ".json"})
}

// =======================
// 🔎 AI proxy: search
// =======================
func (ctrl *IntelController) AISearch(c *fiber.Ctx) error {
	var body struct {
		Query   string `json:"query"`
		MaxURLs int    `json:"max_urls"`
	}
	_ = c.BodyParser(&body)
	if strings.TrimSpace(body.Query) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query is required")
	}
	if body.MaxURLs <= 0 {
		body.MaxURLs = 4
	}

	payload := fiber.Map{"query": body.Query, "max_urls": body.MaxURLs}
	return ctrl.relay(c, "/api/search", payload, aiSearchTimeout)
}

// =======================
// 📰 AI proxy: extract
// =======================
func (ctrl *IntelController) AIExtract(c *fiber.Ctx) error {
	var body struct {
		URLs []string `json:"urls"`
	}
	_ = c.BodyParser(&body)
	if len(body.URLs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "URLs are required")
	}

	payload := fiber.Map{"urls": body.URLs}
	return ctrl.relay(c, "/api/extract", payload, aiExtractTimeout)
}

func (ctrl *IntelController) relay(c *fiber.Ctx, path string, payload any, timeout time.Duration) error {
	status, respBody, err := ctrl.AIProxy.Forward(c.UserContext(), path, payload, timeout)
	if err != nil {
		if errors.Is(err, service.ErrAIUnavailable) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable,
				"AI API service is not available. Make sure it is running on port 5001.")
		}
		log.Printf("[ERROR] ai proxy %s: %v", path, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(respBody)
}

// =======================
// 💾 Saved news records
// =======================
func (ctrl *IntelController) SaveNews(c *fiber.Ctx) error {
	var body struct {
		NewsItems  []json.RawMessage `json:"news_items"`
		Query      string            `json:"query"`
		SourceURLs []string          `json:"source_urls"`
	}
	_ = c.BodyParser(&body)
	if len(body.NewsItems) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No news items to save")
	}
	if body.Query == "" {
		body.Query = "Unknown query"
	}

	now := time.Now()
	id := "news_" + helper.NewRecordID(now)
	record := &model.NewsModel{
		ID:         id,
		Query:      body.Query,
		SourceURLs: body.SourceURLs,
		NewsItems:  body.NewsItems,
		ScrapedAt:  helper.ISOTimestamp(now),
		ItemCount:  len(body.NewsItems),
	}
	if err := ctrl.NewsStore.Create(id, record); err != nil {
		log.Printf("[ERROR] save news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, fiber.Map{"id": id, "saved_count": record.ItemCount})
}

func (ctrl *IntelController) ListNews(c *fiber.Ctx) error {
	records, err := ctrl.NewsStore.List(nil)
	if err != nil {
		log.Printf("[ERROR] list news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	items := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		items = append(items, fiber.Map{
			"id":         r.ID,
			"query":      r.Query,
			"scraped_at": r.ScrapedAt,
			"item_count": r.ItemCount,
			"news_items": r.NewsItems,
		})
	}
	return c.JSON(fiber.Map{"count": len(items), "items": items})
}

func (ctrl *IntelController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.NewsStore.Delete(id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "News record not found")
		}
		log.Printf("[ERROR] delete news: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}
	return helper.JsonOK(c, fiber.Map{"deleted": id})
}
