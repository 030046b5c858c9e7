// Package exercise drives a single exercise run: one question at a time,
// an optional per-question countdown, answer evaluation and progression.
// All transitions run on the UI event loop; there is no shared state
// between sessions.
package exercise

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the per-question state of a session.
type Phase int

const (
	// PhaseAwaitingAnswer accepts a selection or a timeout.
	PhaseAwaitingAnswer Phase = iota

	// PhaseEvaluated shows feedback; further selections are no-ops.
	PhaseEvaluated

	// PhaseCompleted is terminal.
	PhaseCompleted
)

// Item is one multiple-choice question, shared by the math and vocabulary
// quiz flows. Options and answers are strings; math screens format their
// numeric options before building items.
type Item struct {
	Prompt  string
	Detail  string // secondary line under the prompt, e.g. an example sentence
	Options []string
	Answer  string
}

// MathTimerSecs is the fixed answer window per math question.
// Vocabulary flows are untimed.
const MathTimerSecs = 30

// Session is the transient state of one exercise run. It is owned
// exclusively by the active screen and discarded on restart.
type Session struct {
	ID         string
	UserID     string
	Subject    string
	Topic      string
	Difficulty string

	Questions []Item
	Current   int
	Score     int

	// Selected is the learner's choice for the current question.
	// Empty plus TimedOut means the window expired with no selection.
	Selected string
	Correct  bool
	TimedOut bool

	// DeadlineSecs is the per-question window; 0 disables the timer.
	DeadlineSecs int
	TimeLeft     int

	// Seq increments on every question advance. Countdown ticks carry the
	// Seq they were scheduled for, and stale ticks are dropped.
	Seq int

	Phase     Phase
	StartedAt time.Time
}

// NewSession creates a session positioned at question 0, awaiting an answer.
func NewSession(userID, subject, topic, difficulty string, questions []Item, deadlineSecs int) *Session {
	return &Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		Subject:      subject,
		Topic:        topic,
		Difficulty:   difficulty,
		Questions:    questions,
		DeadlineSecs: deadlineSecs,
		TimeLeft:     deadlineSecs,
		Phase:        PhaseAwaitingAnswer,
		StartedAt:    time.Now(),
	}
}

// CurrentQuestion returns the active question, or nil once completed.
func (s *Session) CurrentQuestion() *Item {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// TimerRunning reports whether the countdown should be ticking.
func (s *Session) TimerRunning() bool {
	return s.Phase == PhaseAwaitingAnswer && s.DeadlineSecs > 0
}

// Tick consumes one countdown second for the given question sequence.
// It returns true when the window just expired. Ticks for a stale sequence
// or outside PhaseAwaitingAnswer are ignored; a tick can race the learner's
// selection in the event queue.
func (s *Session) Tick(seq int) bool {
	if seq != s.Seq || !s.TimerRunning() {
		return false
	}
	if s.TimeLeft > 0 {
		s.TimeLeft--
	}
	if s.TimeLeft == 0 {
		s.timeUp()
		return true
	}
	return false
}

// Submit evaluates the learner's selection. A submission after evaluation
// (or after completion) is a no-op, not an error: timer and input events
// can race. Returns whether the selection was evaluated as correct.
func (s *Session) Submit(answer string) bool {
	if s.Phase != PhaseAwaitingAnswer {
		return false
	}
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}

	s.Selected = answer
	s.Correct = answer == q.Answer
	s.Phase = PhaseEvaluated
	if s.Correct {
		s.Score++
	}
	return s.Correct
}

// timeUp evaluates an expired window as an incorrect, unselected answer.
func (s *Session) timeUp() {
	s.Selected = ""
	s.Correct = false
	s.TimedOut = true
	s.Phase = PhaseEvaluated
}

// Advance moves past an evaluated question, resetting per-question state.
// On the last question it transitions to PhaseCompleted instead.
func (s *Session) Advance() {
	if s.Phase != PhaseEvaluated {
		return
	}

	s.Selected = ""
	s.Correct = false
	s.TimedOut = false
	s.TimeLeft = s.DeadlineSecs
	s.Seq++

	if s.Current >= len(s.Questions)-1 {
		s.Phase = PhaseCompleted
		return
	}
	s.Current++
	s.Phase = PhaseAwaitingAnswer
}

// Completed reports whether the session reached its terminal state.
func (s *Session) Completed() bool {
	return s.Phase == PhaseCompleted
}

// TotalQuestions returns the batch size.
func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}
