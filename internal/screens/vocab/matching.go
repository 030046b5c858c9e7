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

// matchingScreen shows two columns, words and shuffled translations, and
// the learner pairs them up.
type matchingScreen struct {
	learner  profile.Profile
	recorder *results.Recorder
	level    wordbank.Level
	words    []wordbank.Word
	rng      *rand.Rand

	board      *exercise.MatchingBoard
	rightSide  bool // cursor column: false = words, true = translations
	cursor     int
	lastWrong  bool
	finalizing bool
}

var _ screen.Screen = (*matchingScreen)(nil)
var _ screen.KeyHintProvider = (*matchingScreen)(nil)

func newMatchingScreen(learner profile.Profile, recorder *results.Recorder, level wordbank.Level, words []wordbank.Word, rng *rand.Rand) *matchingScreen {
	pairs := wordbank.BuildPairs(words)
	return &matchingScreen{
		learner:  learner,
		recorder: recorder,
		level:    level,
		words:    words,
		rng:      rng,
		board:    exercise.NewMatchingBoard(pairs, rng),
	}
}

func (m *matchingScreen) Init() tea.Cmd {
	return nil
}

func (m *matchingScreen) Title() string {
	return "Matching"
}

func (m *matchingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch column"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *matchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case finalizedMsg:
		restart := func() screen.Screen {
			return newMatchingScreen(m.learner, m.recorder, m.level, m.words, m.rng)
		}
		return m, summaryCmd(msg, restart)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *matchingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if m.finalizing {
		return m, nil
	}

	column := m.column()
	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		m.rightSide = !m.rightSide
		m.clampCursor()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(column)-1 {
			m.cursor++
		}
	case "enter", " ", "space":
		if m.cursor >= len(column) {
			return m, nil
		}
		var evaluated, matched bool
		if m.rightSide {
			evaluated, matched = m.board.SelectTranslation(column[m.cursor])
		} else {
			evaluated, matched = m.board.SelectWord(column[m.cursor])
		}
		if evaluated {
			m.lastWrong = !matched
			m.clampCursor()
			if m.board.Completed() {
				m.finalizing = true
				return m, finalizeCmd(m.recorder, m.learner, topicMatching, string(m.level.Tier), m.board.Score, m.board.TotalQuestions())
			}
		} else {
			m.lastWrong = false
		}
	}
	return m, nil
}

// column returns the unmatched entries for the cursor's side.
func (m *matchingScreen) column() []string {
	if m.rightSide {
		return m.board.UnmatchedTranslations()
	}
	return m.board.UnmatchedWords()
}

// clampCursor keeps the cursor on a valid row after the column shrinks.
func (m *matchingScreen) clampCursor() {
	if n := len(m.column()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

func (m *matchingScreen) View(width, height int) string {
	if m.finalizing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your result...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s", m.level.Emoji, m.level.Name))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("matched %d/%d", m.board.Score, m.board.TotalQuestions()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n\n")

	words := m.board.UnmatchedWords()
	translations := m.board.UnmatchedTranslations()

	colWidth := minInt((width-12)/2, 28)
	left := m.renderColumn(words, colWidth, !m.rightSide, m.board.SelectedWord)
	right := m.renderColumn(translations, colWidth, m.rightSide, m.board.SelectedTranslation)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, columns))

	b.WriteString("\n\n")
	if m.lastWrong {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Not a pair, try again"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Match each word with its translation"))
	}

	return b.String()
}

func (m *matchingScreen) renderColumn(entries []string, colWidth int, active bool, selected string) string {
	var b strings.Builder
	for i, entry := range entries {
		prefix := "  "
		if active && i == m.cursor {
			prefix = "> "
		}
		line := prefix + entry

		style := lipgloss.NewStyle().Foreground(theme.Text).Width(colWidth)
		switch {
		case entry == selected:
			style = style.Foreground(theme.Accent).Bold(true)
		case active && i == m.cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
