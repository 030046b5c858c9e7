// Package mathsetup lets the learner pick a math topic and difficulty
// before starting an exercise.
package mathsetup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/config"
	"github.com/ermek/bilim/internal/mathgen"
	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/screens/mathex"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepDifficulty
)

// SetupScreen walks topic then difficulty selection.
type SetupScreen struct {
	learner  profile.Profile
	gen      *mathgen.Generator
	recorder *results.Recorder
	cfg      config.Config

	step  step
	topic mathgen.Topic
	menu  components.Menu
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates the math setup screen positioned at topic selection.
func New(learner profile.Profile, gen *mathgen.Generator, recorder *results.Recorder, cfg config.Config) *SetupScreen {
	s := &SetupScreen{
		learner:  learner,
		gen:      gen,
		recorder: recorder,
		cfg:      cfg,
	}
	s.menu = s.topicMenu()
	return s
}

func (s *SetupScreen) topicMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(mathgen.Topics()))
	for _, topic := range mathgen.Topics() {
		topic := topic
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(string(topic)),
			Action: func() tea.Cmd {
				s.topic = topic
				s.step = stepDifficulty
				s.menu = s.difficultyMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) difficultyMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(mathgen.Difficulties()))
	for _, diff := range mathgen.Difficulties() {
		diff := diff
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(string(diff)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: mathex.New(s.learner, s.gen, s.recorder, s.topic, diff, s.cfg),
					}
				}
			},
		})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Esc from difficulty selection steps back to topics instead of
	// leaving the screen; the app router only sees Esc at step 0.
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" && s.step == stepDifficulty {
		s.step = stepTopic
		s.menu = s.topicMenu()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	prompt := "Pick a topic"
	if s.step == stepDifficulty {
		prompt = "How hard should it be?"
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(prompt))

	if s.step == stepDifficulty {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(string(s.topic)))
	}

	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

func (s *SetupScreen) Title() string {
	return "Math Practice"
}
