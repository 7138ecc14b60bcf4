// Package directory implements the contact record model and the
// operations the phonebook CLI exposes: listing with pagination, adding,
// editing by index and searching.
package directory

import (
	"fmt"

	"phonebook/internal/validation"
)

// Record is a single phone directory entry. The JSON tags match the file
// format written by earlier versions of the tool, so existing directory
// files load unchanged.
type Record struct {
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	Organization  string `json:"organization"`
	WorkPhone     string `json:"work_phone"`
	PersonalPhone string `json:"personal_phone"`
}

// FieldNames lists the record fields in display order, using the same
// snake_case names as the JSON format and the search query syntax.
var FieldNames = []string{
	"last_name",
	"first_name",
	"middle_name",
	"organization",
	"work_phone",
	"personal_phone",
}

var fieldLabels = map[string]string{
	"last_name":      "Last name",
	"first_name":     "First name",
	"middle_name":    "Middle name",
	"organization":   "Organization",
	"work_phone":     "Work phone",
	"personal_phone": "Personal phone",
}

// FieldLabel returns the human-readable label for a field name, or the
// name itself if it is unknown.
func FieldLabel(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	return name
}

// Field returns the value of the named field. The second return value is
// false for unknown field names.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case "last_name":
		return r.LastName, true
	case "first_name":
		return r.FirstName, true
	case "middle_name":
		return r.MiddleName, true
	case "organization":
		return r.Organization, true
	case "work_phone":
		return r.WorkPhone, true
	case "personal_phone":
		return r.PersonalPhone, true
	}
	return "", false
}

// SetField sets the named field to value without validating it. It
// returns false for unknown field names.
func (r *Record) SetField(name, value string) bool {
	switch name {
	case "last_name":
		r.LastName = value
	case "first_name":
		r.FirstName = value
	case "middle_name":
		r.MiddleName = value
	case "organization":
		r.Organization = value
	case "work_phone":
		r.WorkPhone = value
	case "personal_phone":
		r.PersonalPhone = value
	default:
		return false
	}
	return true
}

// ValidateField checks a single field value against the rules for that
// field: name rules for the four text fields, phone rules for the two
// phone fields.
func ValidateField(name, value string) error {
	switch name {
	case "last_name", "first_name", "middle_name", "organization":
		if err := validation.Name(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	case "work_phone", "personal_phone":
		if err := validation.Phone(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownField)
	}
	return nil
}

// Validate checks every field of the record and returns the first
// violation found, wrapped with the field name.
func (r Record) Validate() error {
	for _, name := range FieldNames {
		value, _ := r.Field(name)
		if err := ValidateField(name, value); err != nil {
			return err
		}
	}
	return nil
}
