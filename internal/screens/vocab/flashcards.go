package vocab

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/exercise"
	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/ui/layout"
	"github.com/ermek/bilim/internal/ui/theme"
	"github.com/ermek/bilim/internal/wordbank"
)

// flashcardScreen walks the level's words one card at a time. The learner
// flips each card and self-reports whether they knew it.
type flashcardScreen struct {
	learner  profile.Profile
	recorder *results.Recorder
	level    wordbank.Level
	words    []wordbank.Word

	run        *exercise.FlashcardRun
	finalizing bool
}

var _ screen.Screen = (*flashcardScreen)(nil)
var _ screen.KeyHintProvider = (*flashcardScreen)(nil)

func newFlashcardScreen(learner profile.Profile, recorder *results.Recorder, level wordbank.Level, words []wordbank.Word) *flashcardScreen {
	return &flashcardScreen{
		learner:  learner,
		recorder: recorder,
		level:    level,
		words:    words,
		run:      exercise.NewFlashcardRun(words),
	}
}

func (f *flashcardScreen) Init() tea.Cmd {
	return nil
}

func (f *flashcardScreen) Title() string {
	return "Flashcards"
}

func (f *flashcardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "Y", Description: "Knew it"},
		{Key: "N", Description: "Still learning"},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *flashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finalizedMsg:
		restart := func() screen.Screen {
			return newFlashcardScreen(f.learner, f.recorder, f.level, f.words)
		}
		return f, summaryCmd(msg, restart)

	case tea.KeyMsg:
		if f.finalizing {
			return f, nil
		}
		switch msg.String() {
		case "space", "enter", " ":
			f.run.Flip()
		case "y", "Y":
			return f.mark(true)
		case "n", "N":
			return f.mark(false)
		}
	}
	return f, nil
}

func (f *flashcardScreen) mark(knew bool) (screen.Screen, tea.Cmd) {
	f.run.Mark(knew)
	if !f.run.Done {
		return f, nil
	}
	f.finalizing = true
	return f, finalizeCmd(f.recorder, f.learner, topicFlashcards, string(f.level.Tier), f.run.Score, f.run.TotalQuestions())
}

func (f *flashcardScreen) View(width, height int) string {
	if f.finalizing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your result...")
	}

	word := f.run.CurrentWord()
	if word == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", f.level.Emoji, f.level.Name)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   card %d/%d", f.run.Current+1, f.run.TotalQuestions())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n\n")

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(word.Word))
	if f.run.Revealed {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(word.Translation))
		if word.Example != "" {
			card.WriteString("\n\n")
			card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(word.Example))
		}
	} else {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Space to flip"))
	}

	box := theme.Card.Width(minInt(width-8, 50)).Align(lipgloss.Center).Render(card.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[Y] I knew it    [N] Still learning"))

	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
