package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/dilemma/internal/tournament"
)

type progressMsg struct {
	completed int
	total     int
}

type doneMsg struct {
	completed int
	elapsed   time.Duration
}

type barModel struct {
	bar       progress.Model
	completed int
	total     int
	elapsed   time.Duration
	done      bool
}

func newBarModel() barModel {
	return barModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 24
		if width > 80 {
			width = 80
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case progressMsg:
		m.completed = msg.completed
		m.total = msg.total
		if m.total == 0 {
			return m, nil
		}
		return m, m.bar.SetPercent(float64(m.completed) / float64(m.total))

	case doneMsg:
		m.done = true
		m.completed = msg.completed
		m.elapsed = msg.elapsed
		return m, tea.Quit

	case progress.FrameMsg:
		updated, cmd := m.bar.Update(msg)
		m.bar = updated.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return fmt.Sprintf("✅ %d matches in %s\n", m.completed, m.elapsed.Round(time.Millisecond))
	}
	return fmt.Sprintf("%s %d/%d matches\n", m.bar.View(), m.completed, m.total)
}

// BarProgress drives the animated progress bar from tournament callbacks.
type BarProgress struct {
	program *tea.Program
	step    int
}

// NewBarProgress starts the bar in a background goroutine. The returned
// reporter throttles updates so huge tournaments do not flood the UI.
func NewBarProgress() *BarProgress {
	p := tea.NewProgram(newBarModel())
	go func() {
		_, _ = p.Run()
	}()
	return &BarProgress{program: p}
}

func (b *BarProgress) OnTournamentStart(competitors, totalMatches int) {
	b.step = totalMatches / 1000
	if b.step < 1 {
		b.step = 1
	}
	b.program.Send(progressMsg{completed: 0, total: totalMatches})
}

func (b *BarProgress) OnMatchComplete(completed, total int) {
	if completed%b.step != 0 && completed != total {
		return
	}
	b.program.Send(progressMsg{completed: completed, total: total})
}

func (b *BarProgress) OnTournamentEnd(completed int, elapsed time.Duration) {
	b.program.Send(doneMsg{completed: completed, elapsed: elapsed})
	b.program.Wait()
}

var _ tournament.ProgressReporter = (*BarProgress)(nil)
