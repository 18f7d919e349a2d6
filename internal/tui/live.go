// Package tui animates a board in the terminal with bubbletea,
// mirroring the GUI loop for sessions without a display.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cells/internal/core"
	"cells/internal/sims/elementary"
	"cells/internal/viz"
)

// TickMsg drives the animation clock.
type TickMsg time.Time

const frameRate = 30

// Model steps a board on tick messages and renders it as braille.
type Model struct {
	board *elementary.Board
	step  *core.FixedStep

	seed   int64
	paused bool

	cycle  bool
	delay  time.Duration
	fullAt time.Time
}

// NewModel builds the live view for an already-seeded board.
func NewModel(board *elementary.Board, tps int, seed int64, cycle bool, delay time.Duration) Model {
	return Model{
		board: board,
		step:  core.NewFixedStep(tps),
		seed:  seed,
		cycle: cycle,
		delay: delay,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			m.step.Reset()
		case "n":
			if m.paused && !m.board.Full() {
				m.board.Step()
			}
		case "r":
			m.board.Reset(m.seed)
			m.fullAt = time.Time{}
		case "s":
			m.seed = time.Now().UnixNano()
			m.board.Reset(m.seed)
			m.fullAt = time.Time{}
		}
	case TickMsg:
		if !m.paused {
			m = m.advance(time.Time(msg))
		}
		return m, tick()
	}
	return m, nil
}

// advance runs as many simulation ticks as the fixed-step clock allows,
// and handles the between-cycles delay on a full board.
func (m Model) advance(now time.Time) Model {
	if m.board.Full() {
		if !m.cycle {
			return m
		}
		if m.fullAt.IsZero() {
			m.fullAt = now
			return m
		}
		if now.Sub(m.fullAt) < m.delay {
			return m
		}
		m.board.NextRule()
		m.seed = now.UnixNano()
		m.board.Reset(m.seed)
		m.fullAt = time.Time{}
		return m
	}
	for m.step.ShouldStep() && !m.board.Full() {
		m.board.Step()
	}
	return m
}

func (m Model) View() string {
	size := m.board.Size()

	var b strings.Builder
	b.WriteString(viz.Header.Render(fmt.Sprintf("cells — rule %d", m.board.Rule())))
	b.WriteByte('\n')
	b.WriteString(viz.DrawCells(m.board.Cells(), size.W, size.H).String())

	status := viz.StatusRunning.Render("running")
	switch {
	case m.paused:
		status = viz.StatusPaused.Render("paused")
	case m.board.Full() && m.cycle:
		status = viz.StatusPaused.Render("cycling")
	case m.board.Full():
		status = viz.Subtle.Render("done")
	}
	b.WriteString(fmt.Sprintf("%s  row %s/%d\n",
		status, viz.MetricValue.Render(fmt.Sprint(m.board.Row())), size.H))
	b.WriteString(viz.KeyHint.Render("space pause · n step · r reset · s reseed · q quit"))
	b.WriteByte('\n')
	return b.String()
}

// Run drives the live view until the user quits.
func Run(board *elementary.Board, tps int, seed int64, cycle bool, delay time.Duration) error {
	program := tea.NewProgram(NewModel(board, tps, seed, cycle, delay), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
