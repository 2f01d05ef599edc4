package validators

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

var validate = validator.New()

// EmailPolicy validates optional e-mail fields. CheckDomain adds an MX/host
// lookup on top of the syntax check.
type EmailPolicy struct {
	CheckDomain bool
}

// Normalize trims and lowercases email and validates it. Empty is allowed.
func (p EmailPolicy) Normalize(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil
	}
	if !IsEmailSyntaxValid(email) {
		return "", httperr.MissingField("Insert a valid email.")
	}
	if p.CheckDomain && !IsEmailDomainValid(email) {
		return "", httperr.MissingField("The email domain does not look valid.")
	}
	return email, nil
}

func IsEmailSyntaxValid(email string) bool {
	if err := validate.Var(email, "required,email"); err != nil {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
