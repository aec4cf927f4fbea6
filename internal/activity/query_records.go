package activity

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// QueryRecords steps.
const (
	queryStepKey = iota
	queryStepValue
)

// QueryRecords is a two-step screen: choose a key, then a value of the
// key's kind, then print the matching records. Unknown keys and
// unparseable numeric values re-prompt the same step.
type QueryRecords struct {
	out   io.Writer
	store types.RecordStore
	step  int
	key   types.Key
}

// NewQueryRecords creates the screen over the given store.
func NewQueryRecords(out io.Writer, store types.RecordStore) *QueryRecords {
	return &QueryRecords{out: out, store: store}
}

// Prompt asks for the key or the value depending on the step.
func (q *QueryRecords) Prompt() string {
	if q.step == queryStepKey {
		return "Key (name, email, age, id): "
	}
	return "Value: "
}

// OnStart does nothing; the prompts carry the screen.
func (q *QueryRecords) OnStart() {}

// HandleInput advances the step machine by one consumed line.
func (q *QueryRecords) HandleInput(line string) bool {
	switch q.step {
	case queryStepKey:
		key, err := types.ParseKey(line)
		if err != nil {
			fmt.Fprintf(q.out, "unknown key %q: choose name, email, age, or id\n", line)
			return false
		}
		q.key = key
		q.step = queryStepValue
		return false
	default:
		value, err := q.key.ParseValue(line)
		if err != nil {
			fmt.Fprintf(q.out, "invalid value %q: %s expects a number\n", line, q.key)
			return false
		}
		matches, err := q.store.QueryByKey(q.key, value)
		if err != nil {
			fmt.Fprintf(q.out, "query records: %v\n", err)
			return true
		}
		printRecords(q.out, matches)
		return true
	}
}

// OnFinish does nothing; the result is printed by the final step.
func (q *QueryRecords) OnFinish() {}

// printRecords renders records one per line, ascending by ID as the
// store returns them, or "no records found" for an empty result.
// Shared by the query screen and the menu's list action.
func printRecords(out io.Writer, records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "no records found")
		return
	}
	for _, r := range records {
		fmt.Fprintln(out, r)
	}
}

// ListRecords returns a menu action printing every stored record.
func ListRecords(out io.Writer, store types.RecordStore) func() bool {
	return func() bool {
		records, err := store.All()
		if err != nil {
			fmt.Fprintf(out, "list records: %v\n", err)
			return false
		}
		printRecords(out, records)
		return false
	}
}
