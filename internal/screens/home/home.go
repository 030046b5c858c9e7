// Package home is the main menu screen.
package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/config"
	"github.com/ermek/bilim/internal/mathgen"
	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/screens/mathsetup"
	statsscreen "github.com/ermek/bilim/internal/screens/stats"
	"github.com/ermek/bilim/internal/screens/vocab"
	"github.com/ermek/bilim/internal/stats"
	"github.com/ermek/bilim/internal/store"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/theme"
	"github.com/ermek/bilim/internal/wordbank"
)

// HomeScreen is the subject picker shown after launch.
type HomeScreen struct {
	learner profile.Profile
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with all subject flows wired in.
func New(
	learner profile.Profile,
	gen *mathgen.Generator,
	bank wordbank.Bank,
	rng *rand.Rand,
	recorder *results.Recorder,
	resultRepo *store.ResultRepo,
	statsSvc *stats.Service,
	cfg config.Config,
) *HomeScreen {
	items := []components.MenuItem{
		{Label: "MATH PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: mathsetup.New(learner, gen, recorder, cfg),
				}
			}
		}},
		{Label: "VOCABULARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: vocab.NewSetup(learner, bank, recorder, rng),
				}
			}
		}},
		{Label: "MY STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: statsscreen.New(learner, statsSvc, resultRepo),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		learner: learner,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Hi, %s!", h.learner.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("What do you want to learn today?"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
