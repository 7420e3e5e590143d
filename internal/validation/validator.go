package validation

import (
	goerrors "errors"
	"fmt"
	"html"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
	markupPolicy  = bluemonday.StrictPolicy()
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("user_id", validateUserID)
	_ = v.RegisterValidation("safe_text", validateSafeText)
	_ = v.RegisterValidation("no_markup", validateNoMarkup)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateUserID accepts dataset user identifiers such as USER001
func validateUserID(fl validator.FieldLevel) bool {
	return userIDPattern.MatchString(fl.Field().String())
}

// validateSafeText rejects control characters other than tab and newline
func validateSafeText(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}

// validateNoMarkup accepts values that the strict policy leaves untouched once
// its entity escaping is undone, so "Food & Dining" passes and "Food<b>" does not.
func validateNoMarkup(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return html.UnescapeString(markupPolicy.Sanitize(value)) == value
}

// FormatErrors turns a validation error into "field: message" details
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !goerrors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), Message(fe)))
	}
	return details
}

// Message converts a validator.FieldError to a human-readable message
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "user_id":
		return "must be a valid user ID (letters, digits, '_' or '-', up to 32 characters)"
	case "safe_text":
		return "must not contain control characters"
	case "no_markup":
		return "must not contain markup"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
