package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrAIUnavailable: the external AI service did not answer at all.
// Handlers map this to 503 instead of a generic 500.
var ErrAIUnavailable = errors.New("ai service unavailable")

// AIProxyService forwards search/extract requests to the external AI
// analysis service. Extraction crawls pages, hence the much larger
// timeout. Neither call touches the record store while waiting.
type AIProxyService struct {
	base   string
	client *http.Client
}

func NewAIProxyService(base string) *AIProxyService {
	return &AIProxyService{base: base, client: &http.Client{}}
}

// Forward posts payload to base+path and relays the upstream status and
// body verbatim.
func (s *AIProxyService) Forward(ctx context.Context, path string, payload any, timeout time.Duration) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, ErrAIUnavailable
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body.Bytes(), nil
}
