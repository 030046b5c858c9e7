// Package onboarding collects the learner's name, language, and grade on
// first launch and saves the local profile.
package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/store"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/layout"
	"github.com/ermek/bilim/internal/ui/theme"
)

type step int

const (
	stepName step = iota
	stepLanguage
	stepGrade
)

const maxNameLen = 24

type savedMsg struct {
	Learner profile.Profile
	Err     error
}

// OnboardingScreen is the first-launch setup wizard.
type OnboardingScreen struct {
	repo *store.ProfileRepo
	done func(profile.Profile) tea.Cmd

	step      step
	nameInput components.TextInput
	langMenu  components.Menu
	gradeMenu components.Menu

	name     string
	language profile.LanguageOption
	saving   bool
	saveErr  error
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates the onboarding wizard. done is invoked with the saved profile.
func New(repo *store.ProfileRepo, done func(profile.Profile) tea.Cmd) *OnboardingScreen {
	o := &OnboardingScreen{
		repo:      repo,
		done:      done,
		nameInput: components.NewTextInput("Your name", false, maxNameLen),
	}

	langItems := make([]components.MenuItem, 0, len(profile.AvailableLanguages))
	for _, lang := range profile.AvailableLanguages {
		lang := lang
		langItems = append(langItems, components.MenuItem{
			Label: fmt.Sprintf("%s %s (%s)", lang.Flag, lang.Name, lang.NativeName),
			Action: func() tea.Cmd {
				o.language = lang
				o.step = stepGrade
				return nil
			},
		})
	}
	o.langMenu = components.NewMenu(langItems)

	gradeItems := make([]components.MenuItem, 0, len(profile.AvailableGrades))
	for _, grade := range profile.AvailableGrades {
		grade := grade
		gradeItems = append(gradeItems, components.MenuItem{
			Label: fmt.Sprintf("Grade %d", grade),
			Action: func() tea.Cmd {
				return o.save(grade)
			},
		})
	}
	o.gradeMenu = components.NewMenu(gradeItems)

	return o
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.nameInput.Init()
}

func (o *OnboardingScreen) Title() string {
	return "Welcome"
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	if o.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (o *OnboardingScreen) save(grade int) tea.Cmd {
	o.saving = true
	learner := profile.Profile{
		ID:        uuid.New().String(),
		Name:      o.name,
		Language:  o.language.Code,
		Grade:     grade,
		CreatedAt: time.Now(),
	}
	return func() tea.Msg {
		err := o.repo.Save(context.Background(), learner)
		return savedMsg{Learner: learner, Err: err}
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		o.saving = false
		if msg.Err != nil {
			o.saveErr = msg.Err
			return o, nil
		}
		return o, o.done(msg.Learner)

	case tea.KeyMsg:
		if o.saving {
			return o, nil
		}
		return o.handleKey(msg)
	}

	if o.step == stepName {
		var cmd tea.Cmd
		o.nameInput, cmd = o.nameInput.Update(msg)
		return o, cmd
	}
	return o, nil
}

func (o *OnboardingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch o.step {
	case stepName:
		if msg.String() == "enter" {
			name := strings.TrimSpace(o.nameInput.Value())
			if name == "" {
				o.nameInput.Submit(false)
				return o, nil
			}
			o.name = name
			o.step = stepLanguage
			return o, nil
		}
		var cmd tea.Cmd
		o.nameInput, cmd = o.nameInput.Update(msg)
		return o, cmd

	case stepLanguage:
		if msg.String() == "esc" {
			o.step = stepName
			return o, o.nameInput.Init()
		}
		var cmd tea.Cmd
		o.langMenu, cmd = o.langMenu.Update(msg)
		return o, cmd

	case stepGrade:
		if msg.String() == "esc" {
			o.step = stepLanguage
			return o, nil
		}
		var cmd tea.Cmd
		o.gradeMenu, cmd = o.gradeMenu.Update(msg)
		return o, cmd
	}
	return o, nil
}

func (o *OnboardingScreen) View(width, height int) string {
	if o.saving {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Setting things up...")
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome to Bilim!"))
	b.WriteString("\n\n")

	switch o.step {
	case stepName:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("What's your name?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, o.nameInput.View()))

	case stepLanguage:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Nice to meet you, %s! Which language do you want to learn?", o.name)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, o.langMenu.View()))

	case stepGrade:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("What grade are you in?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, o.gradeMenu.View()))
	}

	if o.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Couldn't save your profile: %v", o.saveErr)))
	}

	return b.String()
}
