package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
)

// CaptchaService issues and checks the arithmetic anti-automation
// challenge. Fully stateless: the token is an HMAC over the expected sum
// under a fixed server secret, so no issuance record is kept. Known
// weakness: without a single-use ledger, an issued token stays valid for
// its sum forever and can be replayed.
type CaptchaService struct {
	secret []byte
}

func NewCaptchaService(secret string) *CaptchaService {
	return &CaptchaService{secret: []byte(secret)}
}

// Issue picks two random two-digit operands and returns them with the
// proof token over their sum.
func (s *CaptchaService) Issue() (a, b int, token string) {
	a = rand.Intn(90) + 10
	b = rand.Intn(90) + 10
	return a, b, s.Proof(strconv.Itoa(a + b))
}

// Proof returns the hex MAC of the given answer string.
func (s *CaptchaService) Proof(answer string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(answer))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the MAC over the submitted answer and compares it to
// the client-supplied token. It matches iff the answer equals the sum the
// token was issued for — no server-side state involved.
func (s *CaptchaService) Verify(answer, token string) bool {
	if answer == "" || token == "" {
		return false
	}
	return hmac.Equal([]byte(s.Proof(answer)), []byte(token))
}
