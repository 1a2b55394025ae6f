package model

import "encoding/json"

// Tweet keeps the fields the crawl requests from the X API; geo stays
// raw since its shape varies.
type Tweet struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	CreatedAt string          `json:"created_at,omitempty"`
	Lang      string          `json:"lang,omitempty"`
	Geo       json.RawMessage `json:"geo,omitempty"`
}

// IntelModel is one saved crawl: the raw tweets plus the AI summary.
type IntelModel struct {
	ID          string   `json:"id"`
	Source      string   `json:"source"`
	Query       []string `json:"query"`
	CollectedAt string   `json:"collected_at"`
	Tweets      []Tweet  `json:"tweets"`
	Summary     any      `json:"summary"`
}

// NewsModel is one saved batch of scraped news items. Items come from
// the external AI service and are stored verbatim.
type NewsModel struct {
	ID         string            `json:"id"`
	Query      string            `json:"query"`
	SourceURLs []string          `json:"source_urls"`
	NewsItems  []json.RawMessage `json:"news_items"`
	ScrapedAt  string            `json:"scraped_at"`
	ItemCount  int               `json:"item_count"`
}
