package vocab

import (
	"fmt"
	"math/rand"
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

// quizScreen asks for the translation of each word, multiple choice.
// Untimed; otherwise the flow mirrors the math exercise.
type quizScreen struct {
	learner  profile.Profile
	recorder *results.Recorder
	level    wordbank.Level
	words    []wordbank.Word
	rng      *rand.Rand

	session    *exercise.Session
	selected   int
	finalizing bool
}

var _ screen.Screen = (*quizScreen)(nil)
var _ screen.KeyHintProvider = (*quizScreen)(nil)

func newQuizScreen(learner profile.Profile, recorder *results.Recorder, level wordbank.Level, words []wordbank.Word, rng *rand.Rand) (*quizScreen, error) {
	questions, err := wordbank.BuildQuiz(words, rng)
	if err != nil {
		return nil, fmt.Errorf("build quiz: %w", err)
	}

	items := make([]exercise.Item, 0, len(questions))
	for _, q := range questions {
		items = append(items, exercise.Item{
			Prompt:  q.Word.Word,
			Detail:  q.Word.Example,
			Options: q.Options,
			Answer:  q.CorrectAnswer,
		})
	}

	return &quizScreen{
		learner:  learner,
		recorder: recorder,
		level:    level,
		words:    words,
		rng:      rng,
		session: exercise.NewSession(
			learner.ID, results.SubjectVocabulary, topicQuiz, string(level.Tier),
			items, 0,
		),
	}, nil
}

func (q *quizScreen) Init() tea.Cmd {
	return nil
}

func (q *quizScreen) Title() string {
	return "Vocabulary Quiz"
}

func (q *quizScreen) KeyHints() []layout.KeyHint {
	if q.session.Phase == exercise.PhaseEvaluated {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (q *quizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finalizedMsg:
		restart := func() screen.Screen {
			next, err := newQuizScreen(q.learner, q.recorder, q.level, q.words, q.rng)
			if err != nil {
				// The word set built a quiz once already; reuse this
				// screen if the rebuild somehow fails.
				return q
			}
			return next
		}
		return q, summaryCmd(msg, restart)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *quizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.finalizing {
		return q, nil
	}
	key := msg.String()

	switch q.session.Phase {
	case exercise.PhaseAwaitingAnswer:
		item := q.session.CurrentQuestion()
		if item == nil {
			return q, nil
		}
		switch key {
		case "up", "k":
			if q.selected > 0 {
				q.selected--
			}
		case "down", "j":
			if q.selected < len(item.Options)-1 {
				q.selected++
			}
		case "enter":
			q.session.Submit(item.Options[q.selected])
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(item.Options) {
				q.selected = idx
				q.session.Submit(item.Options[idx])
			}
		}

	case exercise.PhaseEvaluated:
		q.session.Advance()
		q.selected = 0
		if q.session.Completed() {
			q.finalizing = true
			return q, finalizeCmd(q.recorder, q.learner, topicQuiz, string(q.level.Tier), q.session.Score, q.session.TotalQuestions())
		}
	}
	return q, nil
}

func (q *quizScreen) View(width, height int) string {
	if q.finalizing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your result...")
	}
	if q.session.Phase == exercise.PhaseEvaluated {
		return q.renderFeedback(width)
	}
	return q.renderQuestion(width)
}

func (q *quizScreen) renderQuestion(width int) string {
	s := q.session
	item := s.CurrentQuestion()
	if item == nil {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", q.level.Emoji, q.level.Name))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			s.Current+1,
			s.TotalQuestions(),
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			s.Score,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("What does %q mean?", item.Prompt)))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, option := range item.Options {
		prefix := "  "
		if i == q.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, option)
		if i == q.selected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	return b.String()
}

func (q *quizScreen) renderFeedback(width int) string {
	s := q.session
	item := s.CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n\n")

	if s.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if item != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("%q means %q", item.Prompt, item.Answer)))
		}
	}

	if item != nil && item.Detail != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(item.Detail))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}
