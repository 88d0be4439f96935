package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	successMark = "✔"
	failureMark = "✖"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// resolveMsg ends the spinner with a final line.
type resolveMsg struct {
	ok   bool
	text string
}

type spinnerModel struct {
	spinner  spinner.Model
	text     string
	resolved bool
	ok       bool
}

func newSpinnerModel(text string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{spinner: s, text: text}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		m.resolved = true
		m.ok = msg.ok
		m.text = msg.text
		return m, tea.Quit
	case spinner.TickMsg:
		if m.resolved {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if !m.resolved {
		return m.spinner.View() + " " + m.text
	}
	if m.ok {
		return successStyle.Render(successMark) + " " + m.text + "\n"
	}
	return failureStyle.Render(failureMark) + " " + m.text + "\n"
}

// Spinner is an animated Status backed by a bubbletea program.
type Spinner struct {
	w        io.Writer
	program  *tea.Program
	finished chan struct{}
	once     sync.Once
}

// NewSpinner returns a Spinner rendering to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start begins animating. It does not read from stdin and leaves signal
// handling to the caller.
func (s *Spinner) Start(text string) {
	s.program = tea.NewProgram(newSpinnerModel(text),
		tea.WithOutput(s.w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s.finished = make(chan struct{})
	go func() {
		defer close(s.finished)
		_, _ = s.program.Run()
	}()
}

// Suspend releases the terminal while fn runs, then resumes the animation.
func (s *Spinner) Suspend(fn func()) {
	if s.program == nil {
		fn()
		return
	}
	_ = s.program.ReleaseTerminal()
	fn()
	_ = s.program.RestoreTerminal()
}

func (s *Spinner) Succeed(text string) {
	s.resolve(true, text)
}

func (s *Spinner) Fail(text string) {
	s.resolve(false, text)
}

func (s *Spinner) resolve(ok bool, text string) {
	s.once.Do(func() {
		if s.program == nil {
			NewPlain(s.w).resolve(ok, text)
			return
		}
		s.program.Send(resolveMsg{ok: ok, text: text})
		<-s.finished
	})
}
