package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"customs/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("names the kind and id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("package", "5b7a1c1e-7f0e-4c55-9f0a-2d61c1b0e001")

		assert.Equal(t, "object not found: package 5b7a1c1e-7f0e-4c55-9f0a-2d61c1b0e001", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("keeps the cause in the message", func(t *testing.T) {
		err := errs.NewObjectNotFoundErrorWithCause("importer", 42, errors.New("record not found"))

		assert.Contains(t, err.Error(), "importer 42")
		assert.Contains(t, err.Error(), "(cause: record not found)")
	})
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("tracking number"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: tracking number",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("customer name", errors.New("blank")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer name (cause: blank)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("package status"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: package status",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("customer email", errors.New("missing @")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: customer email (cause: missing @)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("item quantity", 0, 1, 10000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is item quantity, min value is 1, max value is 10000",
		},
		{
			name:     "out of range flattens newlines",
			err:      errs.NewValueIsOutOfRangeError("notes", "line one\nline two", 0, 500),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: line one line two is notes, min value is 0, max value is 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

func TestValueIsOutOfRangeErrorWithCause(t *testing.T) {
	err := errs.NewValueIsOutOfRangeErrorWithCause("money", "-0.01", 0, 100, errors.New("negative amount"))

	assert.Contains(t, err.Error(), "(cause: negative amount)")
	assert.Equal(t, "money", err.ParamName)
	assert.Equal(t, 100, err.Max)
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("survives wrapping", func(t *testing.T) {
		conflict := errs.NewVersionIsInvalidError("package", errors.New("expected version 3, affected 0 rows"))
		wrapped := fmt.Errorf("update package: %w", conflict)

		require.ErrorIs(t, wrapped, errs.ErrVersionIsInvalid)

		var target *errs.VersionIsInvalidError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "package", target.ParamName)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("package", nil)

		assert.Equal(t, "version is invalid: package", err.Error())
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrVersionIsInvalid,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
