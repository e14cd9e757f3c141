package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rococo-gallery/forms/pkg/validator"
)

func ptr(s string) *string { return &s }

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "title", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "description", Message: "too short"})

		assert.Equal(t, "validation failed: title: is required; description: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "title", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "title", Message: "bad symbols"})
	errs.Add(validator.ValidationError{Field: "authorId", Message: "is required"})

	assert.Equal(t, []string{"title", "authorId"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Present("authorId", ptr("u1")),
			validator.MinLen("title", ptr("Ночь"), 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Present("authorId", nil),
			validator.MinLen("title", ptr("ab"), 3),
			validator.MaxLen("title", ptr("ab"), 255),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"authorId", "title"}, verrs.Fields())
	})

	t.Run("wrapped errors are still detected", func(t *testing.T) {
		err := fmt.Errorf("painting: %w", validator.Apply(validator.Present("authorId", nil)))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotNil(t, validator.ExtractValidationErrors(err))
	})

	t.Run("foreign errors are not validation errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns the first failing rule", func(t *testing.T) {
		verr, failed := validator.First(
			validator.MinLen("title", nil, 3).WithKey("errors.title.min"),
			validator.MaxLen("title", nil, 255).WithKey("errors.title.max"),
		)
		require.True(t, failed)
		assert.Equal(t, "errors.title.min", verr.TranslationKey)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("reports success when nothing fails", func(t *testing.T) {
		verr, failed := validator.First(
			validator.MinLen("title", ptr("abc"), 3),
			validator.MaxLen("title", ptr("abc"), 255),
		)
		assert.False(t, failed)
		assert.Empty(t, verr.TranslationKey)
	})
}

func TestValidationError_TranslationArgs(t *testing.T) {
	verr := validator.ValidationError{
		TranslationValues: map[string]any{"min": 3, "field": "title"},
	}
	assert.Equal(t, []string{"field", "title", "min", "3"}, verr.TranslationArgs())
	assert.Nil(t, validator.ValidationError{}.TranslationArgs())
}
