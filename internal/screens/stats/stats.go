// Package stats is the progress screen: rollups plus recent results.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/screen"
	appstats "github.com/ermek/bilim/internal/stats"
	"github.com/ermek/bilim/internal/store"
	"github.com/ermek/bilim/internal/ui/components"
	"github.com/ermek/bilim/internal/ui/layout"
	"github.com/ermek/bilim/internal/ui/theme"
)

const recentLimit = 10

type loadedMsg struct {
	Stats  appstats.UserStats
	Recent []results.ExerciseResult
	Err    error
}

// StatsScreen shows the learner's aggregate progress and their latest
// exercises.
type StatsScreen struct {
	learner profile.Profile
	svc     *appstats.Service
	repo    *store.ResultRepo

	loading bool
	err     error
	stats   appstats.UserStats
	recent  []results.ExerciseResult
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen for one learner.
func New(learner profile.Profile, svc *appstats.Service, repo *store.ResultRepo) *StatsScreen {
	return &StatsScreen{
		learner: learner,
		svc:     svc,
		repo:    repo,
		loading: true,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatsScreen) Title() string {
	return "My Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rollup, err := s.svc.ForUser(ctx, s.learner.ID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		recent, err := s.repo.RecentResults(ctx, s.learner.ID, recentLimit)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Stats: rollup, Recent: recent}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		s.err = msg.Err
		s.stats = msg.Stats
		s.recent = msg.Recent
		return s, nil

	case appstats.ChangedMsg:
		return s, s.load()
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading your progress...")
	}
	if s.err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Couldn't load stats: %v", s.err))
	}
	if s.stats.TotalExercises == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No exercises yet.\n  Finish one and your progress shows up here!")
	}

	var b strings.Builder

	b.WriteString(s.renderOverview(width))
	b.WriteString("\n")
	b.WriteString(s.renderSubjects(width))
	b.WriteString("\n")
	b.WriteString(s.renderRecent(width))

	return b.String()
}

func (s *StatsScreen) renderOverview(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(20)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(label.Render("Exercises done"))
	b.WriteString(value.Render(fmt.Sprintf("%d", s.stats.TotalExercises)))
	b.WriteString("\n")

	b.WriteString(label.Render("Average score"))
	b.WriteString(components.NewProgressBar("", float64(s.stats.AverageScore)/100, true, 34).View())
	b.WriteString("\n")

	b.WriteString(label.Render("Favorite subject"))
	b.WriteString(value.Foreground(theme.Secondary).Render(s.stats.FavoriteSubject))
	b.WriteString("\n")

	streak := fmt.Sprintf("%d days", s.stats.Streak)
	if s.stats.Streak == 1 {
		streak = "1 day"
	}
	b.WriteString(label.Render("Streak"))
	b.WriteString(value.Foreground(theme.Accent).Render("★ " + streak))
	b.WriteString("\n")

	if !s.stats.LastActive.IsZero() {
		b.WriteString(label.Render("Last active"))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(s.stats.LastActive.Format("Jan 2, 2006")))
		b.WriteString("\n")
	}

	card := theme.Card.Width(minInt(width-8, 60)).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *StatsScreen) renderSubjects(width int) string {
	var b strings.Builder
	for _, subject := range []string{results.SubjectMath, results.SubjectVocabulary} {
		sub, ok := s.stats.PerSubject[subject]
		if !ok || sub.TotalCompleted == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(subject))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %d done · avg %d%% · best at %s", sub.TotalCompleted, sub.AverageScore, sub.BestTopic)))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return ""
	}
	card := theme.Card.Width(minInt(width-8, 60)).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *StatsScreen) renderRecent(width int) string {
	if len(s.recent) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("RECENT"))
	b.WriteString("\n")
	for _, r := range s.recent {
		score := lipgloss.NewStyle().Foreground(theme.Success)
		if r.Percentage < 60 {
			score = score.Foreground(theme.Accent)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.CompletedAt.Format("Jan 2")))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("  %s · %s", r.Subject, r.Topic)))
		b.WriteString(score.Render(fmt.Sprintf("  %d/%d (%d%%)", r.Score, r.TotalQuestions, r.Percentage)))
		b.WriteString("\n")
	}

	card := theme.Card.Width(minInt(width-8, 60)).Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
