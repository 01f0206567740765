package kernel_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical form of the fixture id used throughout these tests
const orderIDFixture = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func TestNewUUID(t *testing.T) {
	t.Run("mints a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("two orders never share an id", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
		assert.NotEqual(t, first.String(), second.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses alternate encodings to the same id", func(t *testing.T) {
		encodings := []string{
			orderIDFixture,
			"{7c9e6679-7425-40de-944b-e07fc1f90ae7}",
			"urn:uuid:7c9e6679-7425-40de-944b-e07fc1f90ae7",
			"7c9e6679742540de944be07fc1f90ae7",
		}

		for _, encoded := range encodings {
			id, err := kernel.UUIDFromString(encoded)
			require.NoError(t, err, "encoding: %s", encoded)
			assert.Equal(t, orderIDFixture, id.String())
			assert.NoError(t, id.Validate())
		}
	})

	t.Run("rejects malformed path parameters", func(t *testing.T) {
		malformed := []string{
			"",
			"bill-42",
			"7c9e6679-7425-40de-944b",
			orderIDFixture + "-extra",
			"zz9e6679-7425-40de-944b-e07fc1f90ae7",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("restores the id persisted by a repository", func(t *testing.T) {
		stored := kernel.NewUUID().Bytes()

		id, err := kernel.UUIDFromBytes(stored[:])

		require.NoError(t, err)
		assert.Equal(t, stored.String(), id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("rejects truncated column data", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7c, 0x9e, 0x66})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects an all-zero column", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_String(t *testing.T) {
	t.Run("uses the canonical hyphenated form", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id.String())
	})

	t.Run("round-trips through parsing", func(t *testing.T) {
		id, err := kernel.UUIDFromString(orderIDFixture)

		require.NoError(t, err)
		assert.Equal(t, orderIDFixture, id.String())
	})
}

func TestUUID_Bytes(t *testing.T) {
	id := kernel.NewUUID()
	bytes := id.Bytes()

	assert.IsType(t, uuid.UUID{}, bytes)
	assert.Equal(t, id.String(), bytes.String())
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("matches ids parsed from the same string", func(t *testing.T) {
		first, err := kernel.UUIDFromString(orderIDFixture)
		require.NoError(t, err)
		second, err := kernel.UUIDFromString(orderIDFixture)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("distinguishes different aggregates", func(t *testing.T) {
		billID := kernel.NewUUID()
		paymentID := kernel.NewUUID()

		assert.False(t, billID.IsEqual(paymentID))
	})

	t.Run("zero values compare equal to each other only", func(t *testing.T) {
		var left, right kernel.UUID

		assert.True(t, left.IsEqual(right))
		assert.False(t, left.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("accepts constructed ids", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("rejects the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("rejects the parsed nil id", func(t *testing.T) {
		id, err := kernel.UUIDFromString(uuid.Nil.String())
		require.NoError(t, err)

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_Immutability(t *testing.T) {
	original := kernel.NewUUID()
	originalString := original.String()

	// Bytes returns a copy; scribbling on it must not reach the id.
	bytes := original.Bytes()
	for i := range bytes {
		bytes[i] = 0xFF
	}

	assert.Equal(t, originalString, original.String())
	assert.NoError(t, original.Validate())
}
