package account

import (
	"net/mail"
	"strings"

	"storefront/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.New("invalid email address")
	ErrEmptySlug    = errs.New("slug must not be empty")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(s); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email Email, password string) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }
