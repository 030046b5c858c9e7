// Package vocab holds the vocabulary flows: picking a language and level,
// then one of three exercise types (flashcards, quiz, matching).
package vocab

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/theme"
	"github.com/ermek/bilim/internal/wordbank"
)

type step int

const (
	stepLanguage step = iota
	stepLevel
	stepType
)

// SetupScreen walks language, level, and exercise-type selection.
type SetupScreen struct {
	learner  profile.Profile
	bank     wordbank.Bank
	recorder *results.Recorder
	rng      *rand.Rand

	step     step
	language wordbank.Language
	level    wordbank.Level
	menu     components.Menu
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)

// NewSetup creates the vocabulary setup screen at language selection.
func NewSetup(learner profile.Profile, bank wordbank.Bank, recorder *results.Recorder, rng *rand.Rand) *SetupScreen {
	s := &SetupScreen{
		learner:  learner,
		bank:     bank,
		recorder: recorder,
		rng:      rng,
	}
	s.menu = s.languageMenu()
	return s
}

func (s *SetupScreen) languageMenu() components.Menu {
	langs := s.bank.Languages()
	items := make([]components.MenuItem, 0, len(langs))
	for _, lang := range langs {
		lang := lang
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s (%s)", lang.Flag, lang.Name, lang.NativeName),
			Action: func() tea.Cmd {
				s.language = lang
				s.step = stepLevel
				s.menu = s.levelMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) levelMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(s.language.Levels))
	for _, level := range s.language.Levels {
		level := level
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s  %s — %s", level.Emoji, level.Name, level.Description),
			Action: func() tea.Cmd {
				s.level = level
				s.step = stepType
				s.menu = s.typeMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) typeMenu() components.Menu {
	items := []components.MenuItem{
		{Label: "FLASHCARDS — flip and learn", Action: func() tea.Cmd {
			return s.startExercise(func(words []wordbank.Word) (screen.Screen, error) {
				return newFlashcardScreen(s.learner, s.recorder, s.level, words), nil
			})
		}},
		{Label: "QUIZ — pick the translation", Action: func() tea.Cmd {
			return s.startExercise(func(words []wordbank.Word) (screen.Screen, error) {
				return newQuizScreen(s.learner, s.recorder, s.level, words, s.rng)
			})
		}},
		{Label: "MATCHING — pair the words", Action: func() tea.Cmd {
			return s.startExercise(func(words []wordbank.Word) (screen.Screen, error) {
				return newMatchingScreen(s.learner, s.recorder, s.level, words, s.rng), nil
			})
		}},
	}
	return components.NewMenu(items)
}

// startExercise loads the level's words and pushes the exercise screen.
func (s *SetupScreen) startExercise(build func([]wordbank.Word) (screen.Screen, error)) tea.Cmd {
	words, err := s.bank.Words(s.language.Code, s.level.ID)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	next, err := build(words)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if s.errMsg != "" {
			s.errMsg = ""
			return s, nil
		}
		if kmsg.String() == "esc" && s.step > stepLanguage {
			switch s.step {
			case stepLevel:
				s.step = stepLanguage
				s.menu = s.languageMenu()
			case stepType:
				s.step = stepLevel
				s.menu = s.levelMenu()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	}

	var prompt, context string
	switch s.step {
	case stepLanguage:
		prompt = "Which language?"
	case stepLevel:
		prompt = "Pick your level"
		context = s.language.Name
	case stepType:
		prompt = "How do you want to practice?"
		context = fmt.Sprintf("%s · %s", s.language.Name, s.level.Name)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(prompt))
	if context != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(context))
	}
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

func (s *SetupScreen) Title() string {
	return "Vocabulary"
}
