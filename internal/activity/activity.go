// Package activity implements the console screen interpreter for
// rolodex: the Activity contract, the stack-based Manager that drives
// the prompt/input loop, and the concrete screens (Menu, AddRecord,
// QueryRecords).
package activity

// Activity is a console screen. The Manager shows the screen's Prompt
// before every read and feeds it one input line at a time until
// HandleInput reports the screen is done.
type Activity interface {
	// Prompt returns the text printed before each input read, with no
	// trailing newline.
	Prompt() string

	// OnStart runs once when the screen becomes active.
	OnStart()

	// HandleInput consumes one line of input and reports whether the
	// screen is now done.
	HandleInput(line string) bool

	// OnFinish runs once just before the screen is removed.
	OnFinish()
}
