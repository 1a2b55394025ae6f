package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"floodwatch_backend/internals/features/intel/model"
)

const xSearchRecentURL = "https://api.twitter.com/2/tweets/search/recent"

// UpstreamError carries the third-party status and body so the handler
// can relay them instead of masking everything as a 500.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// XSearchService queries the X recent-search API for flood hashtags.
type XSearchService struct {
	bearer string
	base   string
	client *http.Client
}

func NewXSearchService(bearer string) *XSearchService {
	return &XSearchService{
		bearer: bearer,
		base:   xSearchRecentURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *XSearchService) Enabled() bool { return s.bearer != "" }

// SearchRecent returns recent English-language tweets for the hashtags.
func (s *XSearchService) SearchRecent(ctx context.Context, hashtags []string) ([]model.Tweet, error) {
	query := url.QueryEscape(strings.Join(hashtags, " OR "))
	endpoint := fmt.Sprintf("%s?query=%s&tweet.fields=created_at,geo,lang&max_results=50", s.base, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.bearer)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("x search: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	var body struct {
		Data []model.Tweet `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("x search response: %w", err)
	}

	tweets := make([]model.Tweet, 0, len(body.Data))
	for _, t := range body.Data {
		if t.Lang == "en" {
			tweets = append(tweets, t)
		}
	}
	return tweets, nil
}
