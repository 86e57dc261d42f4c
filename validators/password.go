package validators

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/nanotweet/backend/internal/models"
)

// commonPasswords is a short denylist of passwords seen at the top of every
// breach corpus. Anything here clears min-length but is still trivial.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"superman":    {},
	"letmein123":  {},
	"welcome1":    {},
	"admin123":    {},
	"abc12345":    {},
}

// validatePasswordStrength rejects purely numeric and common passwords.
// Length is enforced separately by the min tag.
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return false
	}
	return !isNumeric(password)
}

// validateSignupRequest holds the cross-field check: the password must not
// be too similar to the chosen username.
func validateSignupRequest(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.SignupRequest)
	if req.Username == "" || req.Password == "" {
		return
	}
	if tooSimilar(req.Password, req.Username) {
		sl.ReportError(req.Password, "Password", "Password", "password_similar", "")
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// tooSimilar flags passwords that contain the username (or vice versa),
// case-insensitively. Catches "alice2024!" for user "alice".
func tooSimilar(password, username string) bool {
	p := strings.ToLower(password)
	u := strings.ToLower(username)
	if len(u) < 3 {
		return p == u
	}
	return strings.Contains(p, u) || strings.Contains(u, p)
}
