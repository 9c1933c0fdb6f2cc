// Package repl implements the console front end described in the external
// interface: one line read per user turn, a bounded input cap, the
// quit/exit meta-inputs, and streamed output from a generation run.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/retrolm/retrolm/pkg/core/model"
	"github.com/retrolm/retrolm/pkg/core/sampling"
	"github.com/retrolm/retrolm/pkg/generate"
)

// inputCap bounds one line of console input.
const inputCap = 256

var (
	historyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9CA3AF"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")).
			Bold(true)

	replyStyle = lipgloss.NewStyle()

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true)
)

// streamMsg carries one generated byte from the background generation
// goroutine back into the Bubble Tea event loop.
type streamMsg struct{ b byte }

// genDoneMsg signals that a generation run has finished.
type genDoneMsg struct{ err error }

// channelSink adapts generate.Sink to a Go channel so that a generation
// run, which executes synchronously on its own goroutine, can stream bytes
// into the Bubble Tea update loop one tea.Msg at a time.
type channelSink struct{ out chan<- streamEvent }

func (s channelSink) Emit(b byte) { s.out <- streamEvent{b: b} }

// streamEvent is one item on the generation goroutine's output channel:
// either a byte to emit, or (with done set) the run's final error.
type streamEvent struct {
	b    byte
	done bool
	err  error
}

// Config bundles the dependencies a session needs to turn a line of input
// into a streamed reply.
type Config struct {
	Params      *model.Parameters
	Sampler     *sampling.Sampler
	MaxTokens   int
	Temperature float32
}

// Model is the Bubble Tea model for the RetroLM console.
type Model struct {
	cfg     Config
	input   textarea.Model
	history viewport.Model
	lines   []string
	width   int
	height  int

	generating bool
	stream     chan streamEvent
	pending    strings.Builder
}

// New builds the initial REPL model.
func New(cfg Config) Model {
	input := textarea.New()
	input.Placeholder = "Type a prompt (or quit/exit to leave)..."
	input.Focus()
	input.Prompt = ""
	input.SetHeight(1)
	input.SetWidth(76)
	input.ShowLineNumbers = false
	input.CharLimit = inputCap

	history := viewport.New(78, 18)
	history.Style = historyStyle
	history.SetContent(helpStyle.Render("RetroLM console. Type a prompt and press enter."))

	return Model{
		cfg:     cfg,
		input:   input,
		history: history,
		width:   80,
		height:  24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(m.width - 4)
		m.history.Width = m.width - 2
		m.history.Height = m.height - 6

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if !m.generating {
				line := strings.TrimSpace(m.input.Value())
				m.input.Reset()
				if line == "" {
					break
				}
				if line == "quit" || line == "exit" {
					return m, tea.Quit
				}
				return m.startGeneration(line)
			}
		}

	case streamMsg:
		m.pending.WriteByte(msg.b)
		m.refreshHistory()
		return m, m.waitForByte()

	case genDoneMsg:
		m.generating = false
		if m.pending.Len() > 0 {
			m.lines = append(m.lines, replyStyle.Render(m.pending.String()))
			m.pending.Reset()
		}
		if msg.err != nil {
			m.lines = append(m.lines, "error: "+msg.err.Error())
		}
		m.refreshHistory()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	help := helpStyle.Render("enter: send   ctrl+c: quit   'quit'/'exit': clean shutdown")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.history.View(),
		inputStyle.Copy().Width(m.width-4).Render(m.input.View()),
		help,
	)
}

// startGeneration records the user's turn and launches generation on a
// background goroutine, returning the command that waits for its first
// streamed byte.
func (m Model) startGeneration(line string) (Model, tea.Cmd) {
	m.lines = append(m.lines, promptStyle.Render("> "+line))
	m.refreshHistory()

	m.generating = true
	m.stream = make(chan streamEvent, 64)
	m.pending.Reset()

	prompt := []byte(line)
	cfg := m.cfg
	stream := m.stream

	go func() {
		_, err := generate.Run(prompt, cfg.Params, cfg.Sampler, channelSink{out: stream}, generate.Options{
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		stream <- streamEvent{done: true, err: err}
		close(stream)
	}()

	return m, m.waitForByte()
}

// waitForByte blocks on the stream channel for the next generated byte, or
// reports completion once the run signals done.
func (m Model) waitForByte() tea.Cmd {
	stream := m.stream
	return func() tea.Msg {
		ev, ok := <-stream
		if !ok || ev.done {
			return genDoneMsg{err: ev.err}
		}
		return streamMsg{b: ev.b}
	}
}

func (m *Model) refreshHistory() {
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if m.pending.Len() > 0 {
		b.WriteString(replyStyle.Render(m.pending.String()))
	}
	m.history.SetContent(b.String())
	m.history.GotoBottom()
}
