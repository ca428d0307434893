package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookmeta/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "title", Message: "must be a valid book title"},
			{Field: "pages", Message: "must be a list of pages or page ranges"},
		}

		assert.Equal(t,
			"validation failed: title: must be a valid book title; pages: must be a list of pages or page ranges",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "pages", Message: "first"},
		{Field: "title", Message: "second"},
		{Field: "pages", Message: "third"},
	}

	assert.Equal(t, []string{"first", "third"}, errs.Get("pages"))
	assert.Nil(t, errs.Get("bookmark"))
	assert.Equal(t, []string{"pages", "title"}, errs.Fields())
	assert.Nil(t, validator.ValidationErrors{}.Fields())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "title", Message: "bad"},
	}

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail, pass, fail)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "title", verrs[0].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	verrs := validator.ValidationErrors{{Field: "pages", Message: "bad"}}

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("checking entry: %w", verrs)
		assert.Equal(t, verrs, validator.ExtractValidationErrors(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("joined", func(t *testing.T) {
		err := errors.Join(errors.New("other"), verrs)
		assert.Equal(t, verrs, validator.ExtractValidationErrors(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})
}
