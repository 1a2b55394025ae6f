package dto

import "unicode"

type RegisterRequest struct {
	Username     string   `json:"username" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
}

type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// CountDigits counts decimal digits in a phone value; registration
// requires at least ten regardless of formatting.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
