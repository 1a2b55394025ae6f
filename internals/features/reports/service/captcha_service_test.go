package service

import (
	"strconv"
	"testing"
)

func TestCaptchaIssueAndVerify(t *testing.T) {
	svc := NewCaptchaService("test-secret")

	a, b, token := svc.Issue()
	if a < 10 || a > 99 || b < 10 || b > 99 {
		t.Fatalf("operands out of two-digit range: %d, %d", a, b)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	if !svc.Verify(strconv.Itoa(a+b), token) {
		t.Fatal("correct answer rejected")
	}
	if svc.Verify(strconv.Itoa(a+b+1), token) {
		t.Fatal("wrong answer accepted")
	}
}

func TestCaptchaRejectsMissingInput(t *testing.T) {
	svc := NewCaptchaService("test-secret")
	_, _, token := svc.Issue()

	if svc.Verify("", token) {
		t.Fatal("empty answer accepted")
	}
	if svc.Verify("42", "") {
		t.Fatal("empty token accepted")
	}
}

func TestCaptchaSecretBindsToken(t *testing.T) {
	a, b, token := NewCaptchaService("secret-a").Issue()
	if NewCaptchaService("secret-b").Verify(strconv.Itoa(a+b), token) {
		t.Fatal("token from a different secret accepted")
	}
}

func TestCaptchaTokenIsReplayable(t *testing.T) {
	// Stateless by design: no single-use ledger exists, so the same
	// proof keeps verifying. Documented weakness, pinned here so a
	// future ledger shows up as a deliberate behavior change.
	svc := NewCaptchaService("test-secret")
	a, b, token := svc.Issue()
	answer := strconv.Itoa(a + b)

	for i := 0; i < 3; i++ {
		if !svc.Verify(answer, token) {
			t.Fatalf("replay %d rejected", i)
		}
	}
}
