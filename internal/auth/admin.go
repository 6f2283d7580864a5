package auth

import (
	"errors"

	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

// ErrUnauthorized is returned for a missing or mismatched admin code.
var ErrUnauthorized = errors.New("invalid admin code")

// Validator compares submitted codes against the configured admin code.
// There is no lockout or rate limiting at this layer; failed attempts are
// only logged.
type Validator struct {
	code string
}

func NewValidator(code string) *Validator {
	return &Validator{code: code}
}

func (v *Validator) Validate(code string) error {
	if code == "" || code != v.code {
		logger.Warnf("invalid admin code attempt: %s", code)
		return ErrUnauthorized
	}
	return nil
}
