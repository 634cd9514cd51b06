package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/medirec/hospital-service/internal/models"
)

// ValidationError represents a single request validation failure.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// WireMessage returns the client-facing message for a validation failure.
// Missing fields outrank a bad role, which outranks a bad email.
func (ve ValidationErrors) WireMessage() string {
	if len(ve) == 0 {
		return "Validation failed"
	}
	for _, rule := range []string{"required", "account_role", "basic_email"} {
		for _, e := range ve {
			if e.Rule == rule {
				switch rule {
				case "required":
					return fmt.Sprintf("Missing required field: %s", e.Field)
				case "account_role":
					return "Invalid role. Must be admin, doctor, or patient"
				case "basic_email":
					return "Invalid email address"
				}
			}
		}
	}
	return fmt.Sprintf("Invalid value for field: %s", ve[0].Field)
}

// LoginWireMessage returns the client-facing message for a login validation
// failure. Login reports missing fields collectively and uses the request's
// own field name for a bad role.
func (ve ValidationErrors) LoginWireMessage() string {
	if len(ve) == 0 {
		return "Validation failed"
	}
	for _, e := range ve {
		if e.Rule == "required" {
			return "Username, password, and user_type are required"
		}
	}
	for _, e := range ve {
		if e.Rule == "account_role" {
			return "Invalid user_type"
		}
	}
	return ve.WireMessage()
}

// Email must look like local@domain.tld; nothing stricter.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validator wraps go-playground/validator with the service's custom rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with all custom rules registered.
func New() *Validator {
	validate := validator.New()

	// Report json tag names so wire messages match request payload keys.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerRules()

	return v
}

// Validate validates a request struct and converts failures.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return toValidationErrors(err)
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		return models.ValidRole(models.AccountRole(fl.Field().String()))
	})

	v.validate.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	v.validate.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		status := models.AppointmentStatus(fl.Field().String())
		return status == models.AppointmentScheduled ||
			status == models.AppointmentCompleted ||
			status == models.AppointmentCancelled
	})
}

func toValidationErrors(err error) ValidationErrors {
	var errors ValidationErrors

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	for _, fe := range fieldErrors {
		errors = append(errors, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}

	return errors
}

func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "account_role":
		return "must be admin, doctor, or patient"
	case "basic_email":
		return "must be a valid email address"
	case "appointment_status":
		return "must be Scheduled, Completed, or Cancelled"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
