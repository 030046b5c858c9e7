// Package summary shows the outcome of a finished exercise.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/ui/layout"
	"github.com/ermek/bilim/internal/ui/theme"
)

// SummaryScreen displays the score, an encouragement line and, when the
// save failed, a warning that progress may be lost.
type SummaryScreen struct {
	result  results.ExerciseResult
	saveErr error

	// restart builds a fresh screen for the same exercise settings;
	// nil hides the try-again option.
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished exercise.
func New(result results.ExerciseResult, saveErr error, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, saveErr: saveErr, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
	if s.restart != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Try again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		if s.restart != nil {
			next := s.restart()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

// Encouragement returns the praise line for a percentage score.
func Encouragement(percentage int) string {
	switch {
	case percentage >= 80:
		return "Awesome! You're a star! 🌟"
	case percentage >= 60:
		return "Great job! Keep it up!"
	case percentage >= 40:
		return "Good effort! Practice makes perfect."
	default:
		return "Keep trying, you'll get there!"
	}
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Exercise complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %s", r.Subject, r.Topic, r.Difficulty)))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	if r.Percentage >= 60 {
		scoreStyle = scoreStyle.Foreground(theme.Success)
	} else {
		scoreStyle = scoreStyle.Foreground(theme.Accent)
	}
	b.WriteString(scoreStyle.Render(
		fmt.Sprintf("%d / %d  (%d%%)", r.Score, r.TotalQuestions, r.Percentage)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(Encouragement(r.Percentage)))

	if s.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Couldn't save this result, so it may not show up in your stats."))
	}

	return b.String()
}
