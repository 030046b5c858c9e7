// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/config"
	"github.com/ermek/bilim/internal/mathgen"
	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/screens/home"
	"github.com/ermek/bilim/internal/screens/onboarding"
	"github.com/ermek/bilim/internal/stats"
	"github.com/ermek/bilim/internal/store"
	"github.com/ermek/bilim/internal/ui/layout"
	"github.com/ermek/bilim/internal/wordbank"
)

// Options carries everything the app needs to run. Learner is nil on a
// fresh install, which routes through onboarding first.
type Options struct {
	Learner    *profile.Profile
	Profiles   *store.ProfileRepo
	Generator  *mathgen.Generator
	Bank       wordbank.Bank
	Rng        *rand.Rand
	Recorder   *results.Recorder
	ResultRepo *store.ResultRepo
	Stats      *stats.Service
	Config     config.Config
}

type streakLoadedMsg struct {
	Streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	learner *profile.Profile
	streak  int
}

func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts, learner: opts.Learner}

	if opts.Learner != nil {
		m.router = router.New(m.homeScreen(*opts.Learner))
	} else {
		m.router = router.New(onboarding.New(opts.Profiles, m.onboarded))
	}
	return m
}

func (m AppModel) homeScreen(learner profile.Profile) screen.Screen {
	return home.New(
		learner,
		m.opts.Generator,
		m.opts.Bank,
		m.opts.Rng,
		m.opts.Recorder,
		m.opts.ResultRepo,
		m.opts.Stats,
		m.opts.Config,
	)
}

// onboarded swaps the wizard for the home screen once the profile is saved.
func (m AppModel) onboarded(learner profile.Profile) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: m.homeScreen(learner)}
		},
		func() tea.Msg { return onboardedMsg{Learner: learner} },
	)
}

type onboardedMsg struct {
	Learner profile.Profile
}

// loadStreak refreshes the day streak shown in the header.
func (m AppModel) loadStreak(userID string) tea.Cmd {
	svc := m.opts.Stats
	return func() tea.Msg {
		rollup, err := svc.ForUser(context.Background(), userID)
		if err != nil {
			return streakLoadedMsg{}
		}
		return streakLoadedMsg{Streak: rollup.Streak}
	}
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	if m.learner != nil {
		cmds = append(cmds, m.loadStreak(m.learner.ID))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakLoadedMsg:
		m.streak = msg.Streak
		return m, nil

	case onboardedMsg:
		learner := msg.Learner
		m.learner = &learner
		return m, m.loadStreak(learner.ID)

	case stats.ChangedMsg:
		cmd := m.router.Update(msg)
		if m.learner != nil {
			cmd = tea.Batch(cmd, m.loadStreak(m.learner.ID))
		}
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, m.height-lipgloss.Height(header)-lipgloss.Height(footer))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
