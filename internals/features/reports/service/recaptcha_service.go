package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ErrRecaptchaRejected: the provider answered and declined the token.
// Anything else from Verify is a transport/provider failure.
var ErrRecaptchaRejected = errors.New("recaptcha rejected token")

// RecaptchaService checks the g-recaptcha-response token against Google.
// An empty secret means the integration is unconfigured and verification
// is skipped — degrade, never crash.
type RecaptchaService struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func NewRecaptchaService(secret string) *RecaptchaService {
	return &RecaptchaService{
		secret:    secret,
		verifyURL: recaptchaVerifyURL,
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Enabled reports whether a secret is configured.
func (s *RecaptchaService) Enabled() bool { return s.secret != "" }

// Verify returns nil when the token passes (or the integration is
// disabled), an error otherwise.
func (s *RecaptchaService) Verify(ctx context.Context, token string) error {
	if !s.Enabled() {
		return nil
	}

	form := url.Values{
		"secret":   {s.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("recaptcha request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("recaptcha response: %w", err)
	}
	if !body.Success {
		return ErrRecaptchaRejected
	}
	return nil
}
