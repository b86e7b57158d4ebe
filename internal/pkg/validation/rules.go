package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// IdentifierPattern is the national id format used as the user id - 9 digits
	IdentifierPattern = `^\d{9}$`

	// Password min length
	PasswordMinLength = 6

	// Name min length
	NameMinLength = 3
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Identifier *regexp.Regexp
}{
	Identifier: regexp.MustCompile(IdentifierPattern),
}

// Messages shown for failed rules, keyed by json field then tag
var fieldMessages = map[string]map[string]string{
	"id": {
		"urbanid":  "ID must be exactly 9 digits long",
		"required": "ID and password are required.",
	},
	"password": {
		"min":      "Password must be at least 6 characters long",
		"required": "ID and password are required.",
	},
	"name":             {"min": "Name must be at least 3 characters long"},
	"email":            {"contains": "Please enter a valid email address"},
	"manager_id":       {"required": "Manager ID is required."},
	"area":             {"required": "Please enter a community name."},
	"radius":           {"gt": "Radius must be a positive number."},
	"event_name":       {"required": "Event name is required."},
	"event_type":       {"required": "Event type is required."},
	"comment_text":     {"required": "Comment text is required."},
	"watch_date":       {"datetime": "Watch date must be in YYYY-MM-DD format."},
	"watch_radius":     {"gt": "Watch radius must be a positive number."},
	"positions_amount": {"gt": "Positions amount must be at least 1."},
}

// Validator checks request payloads against their `validate` tags before they go on the wire
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so messages can be looked up
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on programmer error (empty tag)
	_ = v.RegisterValidation("urbanid", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Identifier.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the human readable message of the first failed rule
func (v *Validator) Struct(s interface{}) (string, bool) {
	err := v.validate.Struct(s)
	if err == nil {
		return "", true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error(), false
	}
	return formatValidationError(fieldErrs[0]), false
}

// IsIdentifier reports whether id has the user id format
func IsIdentifier(id string) bool {
	return CompiledPatterns.Identifier.MatchString(id)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	if byTag, ok := fieldMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}

	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters long"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
