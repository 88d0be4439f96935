package tui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Status is a progress indicator that is started once and resolved exactly
// once, to success or failure.
type Status interface {
	Start(text string)
	// Suspend pauses rendering while fn writes to the terminal.
	Suspend(fn func())
	Succeed(text string)
	Fail(text string)
}

// NewStatus returns a spinner when w is a terminal and plain lines otherwise.
func NewStatus(w io.Writer) Status {
	if f, ok := w.(*os.File); ok && isTerminal(f.Fd()) {
		return NewSpinner(w)
	}
	return NewPlain(w)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Plain writes one line when started and one when resolved.
type Plain struct {
	w    io.Writer
	once sync.Once
}

// NewPlain returns a Status that writes plain lines to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Start(text string) {
	fmt.Fprintf(p.w, "- %s\n", text)
}

func (p *Plain) Suspend(fn func()) {
	fn()
}

func (p *Plain) Succeed(text string) {
	p.resolve(true, text)
}

func (p *Plain) Fail(text string) {
	p.resolve(false, text)
}

func (p *Plain) resolve(ok bool, text string) {
	p.once.Do(func() {
		mark := successMark
		if !ok {
			mark = failureMark
		}
		fmt.Fprintf(p.w, "%s %s\n", mark, text)
	})
}
