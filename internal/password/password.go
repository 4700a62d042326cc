// Package password contains utilities for managing passwords.
package password

import (
	"errors"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	MinimumLength      = 6
	minimumEntropyBits = 28
)

var (
	ErrTooShort = errors.New("password must be at least 6 characters long")
	ErrTooWeak  = errors.New("password is too weak")
)

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinimumLength {
		return ErrTooShort
	}

	if err := passwordvalidator.Validate(password, minimumEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}

	return nil
}
