package mathex

import (
	"github.com/ermek/bilim/internal/exercise"
	"github.com/ermek/bilim/internal/results"
)

// questionsReadyMsg is sent when the question batch has been generated.
type questionsReadyMsg struct {
	Items []exercise.Item
	Err   error
}

// timerTickMsg is sent every second while the countdown runs. Seq names the
// question the tick was scheduled for; ticks from an already-answered
// question are dropped.
type timerTickMsg struct {
	Seq int
}

// finalizedMsg is sent when the finished exercise has been scored and saved.
type finalizedMsg struct {
	Result  results.ExerciseResult
	SaveErr error
}
