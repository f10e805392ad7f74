// Package searchtui is an optional live dashboard for a running solve:
// a progress bar tracking the midgame beam's ply count plus a table of
// candidates with their frame and money, in the order received, fed
// over a channel from the
// solver goroutine so the search itself never blocks on rendering.
package searchtui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Candidate is one row of the top-candidates table: a state reached by
// the search, summarized by its frame and money.
type Candidate struct {
	Frame uint16
	Money uint16
}

// Event reports one step of solver progress: how far the midgame beam
// has advanced, its current size, and the best candidates found so
// far. The solver goroutine sends these; the TUI only ever reads them.
type Event struct {
	Ply        int
	PlyTotal   int
	BeamSize   int
	Candidates []Candidate
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

// Supported reports whether the current stdout looks like a terminal
// capable of rendering the dashboard. Callers fall back to plain
// charmbracelet/log output when this is false.
func Supported() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

type model struct {
	events  <-chan Event
	bar     progress.Model
	rows    table.Model
	ply     int
	plyMax  int
	done    bool
	lastErr error
}

// New builds a dashboard model that reads progress events from events
// until the channel closes.
func New(events <-chan Event) tea.Model {
	bar := progress.New(progress.WithDefaultGradient())

	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Frame", Width: 8},
		{Title: "Money", Width: 8},
	}
	rows := table.New(table.WithColumns(cols), table.WithFocused(false), table.WithHeight(10))

	return model{events: events, bar: bar, rows: rows}
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

type eventMsg Event
type eventsClosedMsg struct{}

func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(e)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.done = true
			return m, tea.Quit
		}

	case eventMsg:
		m.ply = msg.Ply
		m.plyMax = msg.PlyTotal
		m.rows.SetRows(candidateRows(msg.Candidates))
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func candidateRows(candidates []Candidate) []table.Row {
	rows := make([]table.Row, len(candidates))
	for i, c := range candidates {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", c.Frame), fmt.Sprintf("%d", c.Money)}
	}
	return rows
}

func (m model) View() string {
	if m.done {
		return successStyle.Render("search finished") + "\n"
	}

	frac := 0.0
	if m.plyMax > 0 {
		frac = float64(m.ply) / float64(m.plyMax)
	}

	var sb []byte
	sb = append(sb, []byte(headerStyle.Render(fmt.Sprintf(" cadillac-solve: ply %d/%d ", m.ply, m.plyMax)))...)
	sb = append(sb, '\n')
	sb = append(sb, []byte(m.bar.ViewAs(frac))...)
	sb = append(sb, '\n', '\n')
	sb = append(sb, []byte(m.rows.View())...)
	sb = append(sb, '\n')
	sb = append(sb, []byte(infoStyle.Render("press q to quit"))...)
	return string(sb)
}

// Run drives the dashboard to completion against os.Stdout, blocking
// until events closes or the user quits.
func Run(events <-chan Event) error {
	p := tea.NewProgram(New(events), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}
