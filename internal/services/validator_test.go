package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	type input struct {
		Name     string `validate:"required,max=5"`
		Email    string `validate:"required,email_shape"`
		Password string `validate:"required,strong_password"`
	}

	tests := []struct {
		name    string
		in      input
		wantMsg string
	}{
		{name: "valid", in: input{"Ann", "a@example.com", "Abcdef12"}},
		{name: "missing", in: input{"", "a@example.com", "Abcdef12"}, wantMsg: "all required"},
		{name: "too long", in: input{"Annabel", "a@example.com", "Abcdef12"}, wantMsg: "Name is too long"},
		{name: "no tld", in: input{"Ann", "a@example", "Abcdef12"}, wantMsg: "Invalid email address"},
		{name: "spaces", in: input{"Ann", "a b@example.com", "Abcdef12"}, wantMsg: "Invalid email address"},
		{name: "weak", in: input{"Ann", "a@example.com", "abcdefgh"}, wantMsg: "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, and one number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.in, "all required")
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var f *Failure
			if assert.True(t, errors.As(err, &f)) {
				assert.ErrorIs(t, f, ErrValidation)
				assert.Equal(t, tt.wantMsg, f.Message)
			}
		})
	}
}

func TestShortcodeValidation(t *testing.T) {
	type input struct {
		Code string `validate:"shortcode"`
	}
	assert.NoError(t, validateInput(input{"my_Link-1"}, ""))
	assert.Error(t, validateInput(input{"bad code"}, ""))
	assert.Error(t, validateInput(input{"slash/y"}, ""))
}
