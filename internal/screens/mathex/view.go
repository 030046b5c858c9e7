package mathex

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/exercise"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/theme"
)

func (e *ExerciseScreen) View(width, height int) string {
	if e.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", e.errMsg))
	}
	if e.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Preparing questions...")
	}
	if e.finalizing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your result...")
	}
	if e.session.Phase == exercise.PhaseEvaluated {
		return e.renderFeedback(width)
	}
	return e.renderQuestion(width)
}

func (e *ExerciseScreen) renderQuestion(width int) string {
	s := e.session
	q := s.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.Topic, s.Difficulty))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s 0:%02d",
			s.Current+1,
			s.TotalQuestions(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.Score,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("T"),
			s.TimeLeft,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	progress := components.NewProgressBar("", float64(s.Current)/float64(s.TotalQuestions()), false, max(width-4, 4))
	b.WriteString("  " + progress.View())
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Prompt + " = ?"))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, option := range q.Options {
		prefix := "  "
		if i == e.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, option)
		if i == e.selected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter"))

	return b.String()
}

func (e *ExerciseScreen) renderFeedback(width int) string {
	s := e.session
	q := s.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case s.Correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	case s.TimedOut:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Time's up!"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}

	if !s.Correct && q != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
