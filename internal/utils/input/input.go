// Package input validates raw interactive input before it reaches the
// filter stage. Each function takes the trimmed text the operator typed
// and returns either a usable value or a human-readable error that the
// prompt loop shows before re-asking.
//
// Centralising the rules here keeps the UI loop free of validation
// logic and gives the rules a home that unit tests can hit directly.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifies the record attribute a filter run matches against.
type Field string

// The validated set of filter fields.
const (
	FieldID    Field = "id"
	FieldName  Field = "name"
	FieldAge   Field = "age"
	FieldEmail Field = "email"
)

// ErrInvalidField is returned by ParseField for any selection outside
// the validated set. Unlike value errors it is terminal: the session
// ends with a message instead of re-prompting.
var ErrInvalidField = errors.New("invalid option! please choose from: id, name, age, or email")

// validate is shared by all calls. A validator.Validate instance caches
// struct metadata internally and is safe for concurrent use.
var validate = validator.New()

// ParseField normalises and checks the filter-field selection.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldID, FieldName, FieldAge, FieldEmail:
		return f, nil
	default:
		return "", ErrInvalidField
	}
}

// ParseID parses an identifier. Any integer is accepted — ids come
// from the dataset and carry no range contract.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("invalid input: please enter a numeric ID")
	}
	return id, nil
}

// ParseAge parses an age. Empty, non-numeric, and negative input are
// all rejected here so the filter stage never sees them.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("invalid input: please enter a number")
	}
	if age < 0 {
		return 0, errors.New("invalid input: age cannot be negative")
	}
	return age, nil
}

// ParseName checks that a name was actually typed.
func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", errors.New("invalid input: name cannot be empty")
	}
	return name, nil
}

// ParseEmail validates email syntax before the value is used for
// matching. The "email" rule is go-playground/validator's RFC-style
// check — the same rule the record model uses, so interactive input
// and stored data are held to one standard.
func ParseEmail(s string) (string, error) {
	email := strings.TrimSpace(s)

	if err := validate.Var(email, "required,email"); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			return "", translateEmailError(errs)
		}
		return "", fmt.Errorf("invalid email: %w", err)
	}

	return email, nil
}

// translateEmailError converts validator's FieldError values into the
// plain sentences the prompt loop prints, keyed on the failing tag.
func translateEmailError(errs validator.ValidationErrors) error {
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			return errors.New("invalid input: email cannot be empty")
		case "email":
			return errors.New("invalid email format! please enter a valid email address")
		}
	}
	return errors.New("invalid email address")
}
