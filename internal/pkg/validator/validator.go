package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

// Error kinds carried by a ValidationError. errors.Is on a ValidationErrors
// value matches any of its entries.
var (
	ErrMissingField = errors.New("missing field")
	ErrOutOfRange   = errors.New("out of range")
	ErrInvalidValue = errors.New("invalid value")
)

type ValidationError struct {
	Field   string
	Message string
	Err     error
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the kind of every entry to errors.Is.
func (v ValidationErrors) Unwrap() []error {
	var errs []error
	for _, err := range v {
		if err.Err != nil {
			errs = append(errs, err.Err)
		}
	}
	return errs
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Missing builds a required-field entry.
func Missing(field string) ValidationError {
	return ValidationError{Field: field, Message: field + " is required", Err: ErrMissingField}
}

// OutOfRange builds a range entry with a custom message.
func OutOfRange(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message, Err: ErrOutOfRange}
}

// Invalid builds an invalid-value entry with a custom message.
func Invalid(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message, Err: ErrInvalidValue}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation (YYYY-MM)
func IsValidMonth(monthStr string) (time.Time, bool) {
	month, err := time.Parse("2006-01", monthStr)
	return month, err == nil
}

var structValidator = newStructValidator()

func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct runs the `validate` struct tags of s and converts failures into
// ValidationErrors keyed by the json field name.
func Struct(s interface{}) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			errs = append(errs, Missing(field))
		case "email":
			errs = append(errs, Invalid(field, field+" must be a valid email address"))
		case "min", "max", "gte", "lte", "gt", "lt":
			errs = append(errs, OutOfRange(field, field+" must satisfy "+fe.Tag()+"="+fe.Param()))
		case "oneof":
			errs = append(errs, Invalid(field, field+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			errs = append(errs, Invalid(field, field+" is invalid"))
		}
	}
	return errs
}
