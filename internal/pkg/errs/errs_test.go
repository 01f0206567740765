package errs_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("billId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("fabricId")

		assert.Equal(t, "fabricId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: fabricId", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("fabricId", cause)

		assert.Equal(t, "fabricId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: fabricId (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("measurements")

		assert.Equal(t, "measurements", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: measurements", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("measurements", cause)

		assert.Equal(t, "measurements", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: measurements (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("bill is already settled")

		assert.Equal(t, "bill is already settled", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: bill is already settled", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("Ready cannot transition to Cutting")
		err := errs.NewConflictErrorWithCause("illegal transition", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "conflict: illegal transition (cause: Ready cannot transition to Cutting)", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestSecurityError(t *testing.T) {
	t.Run("message never leaks detail", func(t *testing.T) {
		err := errs.NewSecurityError("payment verification", "expected signature abc123, got def456")

		assert.Equal(t, "payment verification", err.Operation)
		assert.Equal(t, "expected signature abc123, got def456", err.Detail)
		assert.Equal(t, "security violation: payment verification", err.Error())
		assert.NotContains(t, err.Error(), "abc123")
		assert.Equal(t, errs.ErrSecurityViolation, err.Unwrap())
	})
}

func TestExternalUnavailableError(t *testing.T) {
	t.Run("NewExternalUnavailableError", func(t *testing.T) {
		cause := errors.New("context deadline exceeded")
		err := errs.NewExternalUnavailableError("fabric catalog", cause)

		assert.Equal(t, "fabric catalog", err.Service)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "external service unavailable: fabric catalog (cause: context deadline exceeded)", err.Error())
		require.ErrorIs(t, err, errs.ErrExternalUnavailable)
		require.ErrorIs(t, err, cause)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrConflict)
		require.Error(t, errs.ErrSecurityViolation)
		require.Error(t, errs.ErrExternalUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "security violation", errs.ErrSecurityViolation.Error())
		assert.Equal(t, "external service unavailable", errs.ErrExternalUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("fabricId")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customerId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		conflictErr := errs.NewConflictError("duplicate payment")
		require.ErrorIs(t, conflictErr, errs.ErrConflict)

		securityErr := errs.NewSecurityError("payment verification", "signature mismatch")
		require.ErrorIs(t, securityErr, errs.ErrSecurityViolation)
	})
}
