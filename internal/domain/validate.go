package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// loosePhonePattern accepts E.164-like numbers with common separators
var loosePhonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// dueDate wire format check
	_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("loosephone", func(fl validator.FieldLevel) bool {
		return loosePhonePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidationResult reports the outcome of an exhaustive validation pass
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Err converts the result into a *ValidationError, or nil when valid
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Messages: r.Errors}
}

// runValidation evaluates every rule on the record and collects all
// failures; it never stops at the first violation.
func runValidation(record any) ValidationResult {
	err := validate.Struct(record)
	if err == nil {
		return ValidationResult{IsValid: true}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationResult{Errors: []string{err.Error()}}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s %s", fe.Field(), GetValidationMessage(fe.Tag())))
	}
	return ValidationResult{Errors: messages}
}

// Validate runs required, format, and enum checks for the partner record
func (p *Partner) Validate() ValidationResult {
	return runValidation(p)
}

// Validate runs required, format, and enum checks for the personnel record
func (p *Personnel) Validate() ValidationResult {
	return runValidation(p)
}

// Validate runs required, format, enum, and range checks for the deliverable
func (d *Deliverable) Validate() ValidationResult {
	return runValidation(d)
}
