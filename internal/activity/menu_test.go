package activity

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMenu(out *bytes.Buffer) (*Menu, *int) {
	calls := 0
	items := []MenuItem{
		{Label: "Count", Action: func() bool { calls++; return false }},
		{Label: "Exit", Action: func() bool { return true }},
	}
	return NewMenu(out, "Test Menu", items), &calls
}

func TestMenuOnStartPrintsTitleAndItems(t *testing.T) {
	var out bytes.Buffer
	menu, _ := testMenu(&out)

	menu.OnStart()

	assert.Equal(t, "Test Menu\n1. Count\n2. Exit\n", out.String())
}

func TestMenuHandleInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDone  bool
		wantCalls int
		wantErr   bool
	}{
		{name: "valid selection runs action", input: "1", wantCalls: 1},
		{name: "selection with spaces", input: " 1 ", wantCalls: 1},
		{name: "exit action ends menu", input: "2", wantDone: true},
		{name: "zero is out of range", input: "0", wantErr: true},
		{name: "out of range high", input: "99", wantErr: true},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "empty line", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			menu, calls := testMenu(&out)

			done := menu.HandleInput(tt.input)

			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantCalls, *calls)
			if tt.wantErr {
				assert.Contains(t, out.String(), "invalid selection", "error printed, menu stays active")
			} else {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestMenuInvalidInputDoesNotAdvanceState(t *testing.T) {
	var out bytes.Buffer
	menu, calls := testMenu(&out)

	assert.False(t, menu.HandleInput("99"))
	assert.False(t, menu.HandleInput("1"), "menu still dispatches after a bad selection")
	assert.Equal(t, 1, *calls)
}
