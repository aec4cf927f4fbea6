package activity

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MenuItem pairs a label with the action run when the item is chosen.
// The action's return value becomes the menu's HandleInput result, so
// an action returning true ends the menu itself.
type MenuItem struct {
	Label  string
	Action func() bool
}

// Menu is a screen showing a titled, numbered list of items and
// dispatching 1-based selections to their actions.
type Menu struct {
	out   io.Writer
	title string
	items []MenuItem
}

// NewMenu creates a menu with the given title and items.
func NewMenu(out io.Writer, title string, items []MenuItem) *Menu {
	return &Menu{out: out, title: title, items: items}
}

// Prompt asks for a selection.
func (m *Menu) Prompt() string {
	return "Select an option: "
}

// OnStart prints the title and the numbered item labels.
func (m *Menu) OnStart() {
	fmt.Fprintln(m.out, m.title)
	for i, item := range m.items {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, item.Label)
	}
}

// HandleInput parses a 1-based item number and runs its action.
// Non-numeric or out-of-range input prints an error and keeps the
// menu active.
func (m *Menu) HandleInput(line string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(m.items) {
		fmt.Fprintf(m.out, "invalid selection %q: enter a number between 1 and %d\n", line, len(m.items))
		return false
	}
	return m.items[n-1].Action()
}

// OnFinish does nothing; the menu has no teardown.
func (m *Menu) OnFinish() {}
