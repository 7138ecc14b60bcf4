// Package validation holds the field rules for directory records.
// The rules accept Latin and Cyrillic text for names and a fairly
// permissive set of phone number spellings.
package validation

import (
	"errors"
	"regexp"
)

// ErrInvalidName is returned when a name or organization field does not
// match the allowed pattern.
var ErrInvalidName = errors.New("invalid name")

// ErrInvalidPhone is returned when a phone number does not match the
// allowed pattern.
var ErrInvalidPhone = errors.New("invalid phone number")

var (
	// Letters (Latin or Cyrillic) and spaces, optionally one hyphenated tail.
	namePattern = regexp.MustCompile(`^[a-zA-Zа-яА-Я\s]+(?:-[a-zA-Zа-яА-Я\s]+)?$`)

	// Optional +, 3 digits optionally in parens, then 3 and 4-6 digits with
	// optional -, space or . separators.
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// Name validates a name or organization field.
func Name(s string) error {
	if !namePattern.MatchString(s) {
		return ErrInvalidName
	}
	return nil
}

// Phone validates a phone number field.
func Phone(s string) error {
	if !phonePattern.MatchString(s) {
		return ErrInvalidPhone
	}
	return nil
}
