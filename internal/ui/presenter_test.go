package ui

import (
	"bytes"
	"testing"

	"github.com/abhisakh/Branching-Out/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestPresenter(t *testing.T) {
	t.Run("renders name, age, and email per record", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPresenter(&buf, true)

		p.PrintUsers("Matching users by age:", []types.User{
			{ID: 1, Name: "Alice", Age: 25, Email: "alice@example.com"},
		})

		out := buf.String()
		assert.Contains(t, out, "Matching users by age:")
		assert.Contains(t, out, "ID   : 1")
		assert.Contains(t, out, "Name : Alice")
		assert.Contains(t, out, "Age  : 25")
		assert.Contains(t, out, "Email: alice@example.com")
	})

	t.Run("absent email renders as N/A, absent id is omitted", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPresenter(&buf, true)

		p.PrintUsers("User found:", []types.User{{Name: "Bob", Age: 30}})

		out := buf.String()
		assert.Contains(t, out, "Email: N/A")
		assert.NotContains(t, out, "ID   :")
	})

	t.Run("no-matches notice is informational text", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPresenter(&buf, true)

		p.NoMatches("No users found with that age.")

		assert.Contains(t, buf.String(), "No users found with that age.")
	})

	t.Run("disabled colour output carries no escape codes", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPresenter(&buf, true)

		p.Banner()
		p.Error("Error: something")

		assert.NotContains(t, buf.String(), "\x1b[")
	})
}
