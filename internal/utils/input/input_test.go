package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	t.Run("accepts the validated set, normalising case and spacing", func(t *testing.T) {
		for _, raw := range []string{"id", " NAME ", "Age", "email"} {
			_, err := ParseField(raw)
			assert.NoError(t, err, "input %q", raw)
		}

		f, err := ParseField("  EMAIL ")
		require.NoError(t, err)
		assert.Equal(t, FieldEmail, f)
	})

	t.Run("rejects anything else with the terminal error", func(t *testing.T) {
		for _, raw := range []string{"", "color", "e-mail", "ids"} {
			_, err := ParseField(raw)
			assert.ErrorIs(t, err, ErrInvalidField, "input %q", raw)
		}
	})
}

func TestParseAge(t *testing.T) {
	t.Run("accepts non-negative integers", func(t *testing.T) {
		for raw, want := range map[string]int{"0": 0, "25": 25, " 41 ": 41} {
			age, err := ParseAge(raw)
			require.NoError(t, err, "input %q", raw)
			assert.Equal(t, want, age)
		}
	})

	t.Run("rejects empty, non-numeric, and negative input", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "-5", "25.5"} {
			_, err := ParseAge(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = ParseID("seven")
	assert.Error(t, err)
}

func TestParseName(t *testing.T) {
	name, err := ParseName("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = ParseName("   ")
	assert.Error(t, err)
}

func TestParseEmail(t *testing.T) {
	t.Run("accepts dotted and hyphenated addresses", func(t *testing.T) {
		email, err := ParseEmail("a.b-c@sub.domain.com")
		require.NoError(t, err)
		assert.Equal(t, "a.b-c@sub.domain.com", email)
	})

	t.Run("rejects malformed addresses with a readable message", func(t *testing.T) {
		_, err := ParseEmail("not-an-email")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email format")
	})

	t.Run("rejects empty input with a distinct message", func(t *testing.T) {
		_, err := ParseEmail("  ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}
