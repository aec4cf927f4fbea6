package activity

import (
	"io"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// RootMenu builds the tracker's top-level menu over the given manager
// and store. Add Record and Query Records push a fresh screen onto the
// manager; List Records prints inline; Exit ends the menu, which
// empties the stack and returns control from Manager.Run.
func RootMenu(m *Manager, out io.Writer, store types.RecordStore) *Menu {
	items := []MenuItem{
		{Label: "Add Record", Action: func() bool {
			m.Push(NewAddRecord(out, store))
			return false
		}},
		{Label: "List Records", Action: ListRecords(out, store)},
		{Label: "Query Records", Action: func() bool {
			m.Push(NewQueryRecords(out, store))
			return false
		}},
		{Label: "Exit", Action: func() bool { return true }},
	}
	return NewMenu(out, "Record Tracker", items)
}
