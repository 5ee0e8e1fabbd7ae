package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("   ").Validate())
	assert.True(t, NewStringValidation("  alice ").WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("alice").WithMaxLength(4).Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
	assert.True(t, NewStringValidation("a@b.io").WithPattern(CompiledPatterns.Email).Validate())
}

type sample struct {
	FirstName string `form:"first_name" binding:"notblank" validate:"notblank"`
}

func TestRegisterReportsFormNames(t *testing.T) {
	v := validator.New()
	Register(v)

	err := v.Struct(sample{FirstName: "  "})
	require.Error(t, err)
	verrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "first_name", verrs[0].Field())
	assert.Equal(t, "notblank", verrs[0].Tag())

	assert.NoError(t, v.Struct(sample{FirstName: "Ada"}))
}
