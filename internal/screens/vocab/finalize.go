package vocab

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/screens/summary"
	"github.com/ermek/bilim/internal/stats"
)

// Exercise-type names recorded as the result topic.
const (
	topicFlashcards = "Flashcards"
	topicQuiz       = "Quiz"
	topicMatching   = "Matching"
)

// finalizeCmd scores a finished vocabulary exercise and records it off the
// event loop.
func finalizeCmd(recorder *results.Recorder, learner profile.Profile, topic string, level string, score, total int) tea.Cmd {
	return func() tea.Msg {
		result, err := recorder.Finalize(context.Background(), results.Outcome{
			UserID:         learner.ID,
			Subject:        results.SubjectVocabulary,
			Topic:          topic,
			Difficulty:     level,
			Score:          score,
			TotalQuestions: total,
		})
		return finalizedMsg{Result: result, SaveErr: err}
	}
}

// summaryCmd swaps the exercise for its summary and nudges stats displays
// to reload.
func summaryCmd(msg finalizedMsg, restart func() screen.Screen) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(msg.Result, msg.SaveErr, restart),
			}
		},
		func() tea.Msg { return stats.ChangedMsg{} },
	)
}
