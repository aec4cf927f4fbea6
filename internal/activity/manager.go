package activity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAlreadyRunning is returned by Run on a Manager that has already
// been started. A Manager supports exactly one run per instance; this
// is a programmer error, not a user-facing condition.
var ErrAlreadyRunning = errors.New("manager is already running")

// Manager drives a stack of activities over a line-oriented console.
// The top of the stack is the current screen; a screen's input handler
// may Push a nested screen, which takes over until it finishes, and
// the parent resumes underneath. Single-threaded and blocking: each
// iteration reads exactly one line.
type Manager struct {
	in      *bufio.Reader
	out     io.Writer
	stack   []Activity
	started bool
}

// NewManager creates a Manager reading lines from in and printing
// prompts to out.
func NewManager(in io.Reader, out io.Writer) *Manager {
	return &Manager{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Push makes a the current screen and runs its OnStart.
func (m *Manager) Push(a Activity) {
	m.stack = append(m.stack, a)
	a.OnStart()
}

// Run pushes root and loops until the stack empties: print the top
// screen's prompt without a trailing newline, read one line, hand it
// to the screen, and pop the screen when it reports done. End of
// input reads as an empty line; only an empty stack ends the loop.
// Returns ErrAlreadyRunning if this Manager was started before or
// already holds screens.
func (m *Manager) Run(root Activity) error {
	if m.started || len(m.stack) > 0 {
		return ErrAlreadyRunning
	}
	m.started = true

	m.Push(root)
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		fmt.Fprint(m.out, top.Prompt())
		if top.HandleInput(m.readLine()) {
			top.OnFinish()
			m.pop(top)
		}
	}
	return nil
}

// pop removes a from the stack. The handler may have pushed screens on
// top of a, so it is removed by identity, not by position.
func (m *Manager) pop(a Activity) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i] == a {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			return
		}
	}
}

// readLine reads one line, stripping the line ending. End of input is
// treated as an empty line rather than an error.
func (m *Manager) readLine() string {
	line, err := m.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
