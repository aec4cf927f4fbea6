package activity

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// AddRecord steps for the linear prompt sequence.
const (
	addStepName = iota
	addStepEmail
	addStepAge
	addStepDone // defensive default, unreachable in normal use
)

// AddRecord is a three-step screen collecting a record's name, email,
// and age. Name and email take the raw line unconditionally; age
// re-prompts on unparseable or negative input. On finish the record is
// added to the store and its assigned ID printed.
type AddRecord struct {
	out   io.Writer
	store types.RecordStore
	step  int
	name  string
	email string
	age   int
}

// NewAddRecord creates the screen over the given store.
func NewAddRecord(out io.Writer, store types.RecordStore) *AddRecord {
	return &AddRecord{out: out, store: store}
}

// Prompt names the field the current step collects.
func (a *AddRecord) Prompt() string {
	switch a.step {
	case addStepName:
		return "Name: "
	case addStepEmail:
		return "Email: "
	case addStepAge:
		return "Age: "
	default:
		return ""
	}
}

// OnStart does nothing; the prompts carry the screen.
func (a *AddRecord) OnStart() {}

// HandleInput advances the step machine by one consumed line.
func (a *AddRecord) HandleInput(line string) bool {
	switch a.step {
	case addStepName:
		a.name = line
		a.step = addStepEmail
		return false
	case addStepEmail:
		a.email = line
		a.step = addStepAge
		return false
	case addStepAge:
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 {
			fmt.Fprintf(a.out, "invalid age %q: enter a non-negative number\n", line)
			return false
		}
		a.age = n
		a.step = addStepDone
		return true
	default:
		return true
	}
}

// OnFinish adds the collected record and prints its assigned ID.
func (a *AddRecord) OnFinish() {
	rec, err := a.store.Add(types.Record{Name: a.name, Email: a.email, Age: a.age})
	if err != nil {
		fmt.Fprintf(a.out, "add record: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Added record #%d\n", rec.ID)
}
