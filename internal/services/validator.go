package services

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/rdrx/internal/password"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	shortcodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, fn := range map[string]validator.Func{
		"email_shape":     emailShapeValidation,
		"strong_password": strongPasswordValidation,
		"shortcode":       shortcodeValidation,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func emailShapeValidation(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func strongPasswordValidation(fl validator.FieldLevel) bool {
	return password.ValidateStrength(fl.Field().String()) == nil
}

func shortcodeValidation(fl validator.FieldLevel) bool {
	return shortcodePattern.MatchString(fl.Field().String())
}

// validateInput runs struct validation and turns the first violated rule
// into a validation Failure. requiredMsg is used for missing fields.
func validateInput(input any, requiredMsg string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fail(ErrValidation, requiredMsg)
	case "email_shape":
		return fail(ErrValidation, "Invalid email address")
	case "strong_password":
		return fail(ErrValidation, "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one number")
	case "shortcode":
		return fail(ErrValidation, "Custom code may only contain letters, numbers, '-' and '_' (max 64 characters)")
	case "max":
		return fail(ErrValidation, fe.Field()+" is too long")
	case "http_url", "url":
		return fail(ErrValidation, "Invalid URL")
	default:
		return fail(ErrValidation, "Invalid "+fe.Field())
	}
}
