// Package mathex runs a timed math exercise: five generated questions,
// thirty seconds each, feedback after every answer.
package mathex

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ermek/bilim/internal/config"
	"github.com/ermek/bilim/internal/exercise"
	"github.com/ermek/bilim/internal/mathgen"
	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
	"github.com/ermek/bilim/internal/router"
	"github.com/ermek/bilim/internal/screen"
	"github.com/ermek/bilim/internal/screens/summary"
	"github.com/ermek/bilim/internal/stats"
	"github.com/ermek/bilim/internal/ui/layout"
)

// ExerciseScreen drives one math session from generation to summary.
type ExerciseScreen struct {
	learner    profile.Profile
	gen        *mathgen.Generator
	recorder   *results.Recorder
	topic      mathgen.Topic
	difficulty mathgen.Difficulty
	cfg        config.Config

	session    *exercise.Session
	selected   int
	finalizing bool
	errMsg     string
}

var _ screen.Screen = (*ExerciseScreen)(nil)
var _ screen.KeyHintProvider = (*ExerciseScreen)(nil)

// New creates a math exercise screen; questions are generated in Init.
func New(learner profile.Profile, gen *mathgen.Generator, recorder *results.Recorder, topic mathgen.Topic, difficulty mathgen.Difficulty, cfg config.Config) *ExerciseScreen {
	return &ExerciseScreen{
		learner:    learner,
		gen:        gen,
		recorder:   recorder,
		topic:      topic,
		difficulty: difficulty,
		cfg:        cfg,
	}
}

func (e *ExerciseScreen) Init() tea.Cmd {
	return e.generateBatch()
}

func (e *ExerciseScreen) Title() string {
	return "Math Practice"
}

func (e *ExerciseScreen) KeyHints() []layout.KeyHint {
	if e.session != nil && e.session.Phase == exercise.PhaseEvaluated {
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

// generateBatch builds the question batch off the event loop.
func (e *ExerciseScreen) generateBatch() tea.Cmd {
	return func() tea.Msg {
		questions, err := e.gen.GenerateBatch(e.topic, e.difficulty, e.cfg.QuestionCount)
		if err != nil {
			return questionsReadyMsg{Err: err}
		}

		items := make([]exercise.Item, 0, len(questions))
		for _, q := range questions {
			options := make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				options = append(options, strconv.Itoa(o))
			}
			items = append(items, exercise.Item{
				Prompt:  q.Prompt,
				Options: options,
				Answer:  strconv.Itoa(q.Answer),
			})
		}
		return questionsReadyMsg{Items: items}
	}
}

func (e *ExerciseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return e.handleQuestionsReady(msg)
	case timerTickMsg:
		return e.handleTick(msg)
	case finalizedMsg:
		return e.handleFinalized(msg)
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e *ExerciseScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		e.errMsg = msg.Err.Error()
		return e, nil
	}
	e.session = exercise.NewSession(
		e.learner.ID, results.SubjectMath, string(e.topic), string(e.difficulty),
		msg.Items, e.cfg.TimerSecs,
	)
	e.selected = 0
	return e, tickCmd(e.session.Seq)
}

func (e *ExerciseScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if e.session == nil {
		return e, nil
	}
	e.session.Tick(msg.Seq)
	if e.session.TimerRunning() {
		return e, tickCmd(e.session.Seq)
	}
	// Expired or answered; the countdown resumes when the next
	// question starts.
	return e, nil
}

func (e *ExerciseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if e.errMsg != "" {
		return e, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if e.session == nil || e.finalizing {
		return e, nil
	}

	switch e.session.Phase {
	case exercise.PhaseAwaitingAnswer:
		q := e.session.CurrentQuestion()
		if q == nil {
			return e, nil
		}
		switch key {
		case "up", "k":
			if e.selected > 0 {
				e.selected--
			}
		case "down", "j":
			if e.selected < len(q.Options)-1 {
				e.selected++
			}
		case "enter":
			e.session.Submit(q.Options[e.selected])
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Options) {
				e.selected = idx
				e.session.Submit(q.Options[idx])
			}
		}
		return e, nil

	case exercise.PhaseEvaluated:
		// Any key moves on.
		e.session.Advance()
		e.selected = 0
		if e.session.Completed() {
			e.finalizing = true
			return e, e.finalize()
		}
		return e, tickCmd(e.session.Seq)
	}

	return e, nil
}

// finalize scores the session and records the result off the event loop.
func (e *ExerciseScreen) finalize() tea.Cmd {
	s := e.session
	return func() tea.Msg {
		result, err := e.recorder.Finalize(context.Background(), results.Outcome{
			UserID:         s.UserID,
			Subject:        s.Subject,
			Topic:          s.Topic,
			Difficulty:     s.Difficulty,
			Score:          s.Score,
			TotalQuestions: s.TotalQuestions(),
		})
		return finalizedMsg{Result: result, SaveErr: err}
	}
}

func (e *ExerciseScreen) handleFinalized(msg finalizedMsg) (screen.Screen, tea.Cmd) {
	restart := func() screen.Screen {
		return New(e.learner, e.gen, e.recorder, e.topic, e.difficulty, e.cfg)
	}
	return e, tea.Batch(
		func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(msg.Result, msg.SaveErr, restart),
			}
		},
		func() tea.Msg { return stats.ChangedMsg{} },
	)
}

// tickCmd schedules the next countdown second for the given question.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Seq: seq}
	})
}
