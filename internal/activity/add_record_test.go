package activity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/memory"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func attachedMemoryStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	require.NoError(t, s.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { _ = s.Detach() })
	return s
}

func TestAddRecordPromptsFollowSteps(t *testing.T) {
	var out bytes.Buffer
	a := NewAddRecord(&out, attachedMemoryStore(t))

	assert.Equal(t, "Name: ", a.Prompt())
	assert.False(t, a.HandleInput("Alice"))
	assert.Equal(t, "Email: ", a.Prompt())
	assert.False(t, a.HandleInput("alice@example.com"))
	assert.Equal(t, "Age: ", a.Prompt())
	assert.True(t, a.HandleInput("30"))
}

func TestAddRecordFinishAddsAndPrintsID(t *testing.T) {
	var out bytes.Buffer
	store := attachedMemoryStore(t)
	a := NewAddRecord(&out, store)

	a.HandleInput("Alice")
	a.HandleInput("alice@example.com")
	require.True(t, a.HandleInput("30"))
	a.OnFinish()

	assert.Equal(t, "Added record #0\n", out.String())

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, types.Record{ID: 0, Name: "Alice", Email: "alice@example.com", Age: 30}, all[0])
}

func TestAddRecordInvalidAgeReprompts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "negative age", input: "-5"},
		{name: "non-numeric age", input: "abc"},
		{name: "empty age", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			store := attachedMemoryStore(t)
			a := NewAddRecord(&out, store)

			a.HandleInput("Alice")
			a.HandleInput("alice@example.com")

			assert.False(t, a.HandleInput(tt.input), "step does not advance")
			assert.Contains(t, out.String(), "invalid age")
			assert.Equal(t, "Age: ", a.Prompt(), "still asking for age")

			all, err := store.All()
			require.NoError(t, err)
			assert.Empty(t, all, "no record created")

			assert.True(t, a.HandleInput("30"), "valid retry finishes")
		})
	}
}

func TestAddRecordRawLinesKeptVerbatim(t *testing.T) {
	var out bytes.Buffer
	store := attachedMemoryStore(t)
	a := NewAddRecord(&out, store)

	a.HandleInput("  Alice Smith ")
	a.HandleInput("not an email")
	require.True(t, a.HandleInput("30"))
	a.OnFinish()

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "  Alice Smith ", all[0].Name, "name stored unvalidated")
	assert.Equal(t, "not an email", all[0].Email, "email stored unvalidated")
}
