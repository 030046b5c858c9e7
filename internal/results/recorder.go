package results

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// Outcome is what a finished session reports to the recorder.
type Outcome struct {
	UserID         string
	Subject        string
	Topic          string
	Difficulty     string
	Score          int
	TotalQuestions int
}

// Recorder finalizes sessions: it computes the percentage, persists the
// result and triggers a stats refresh.
type Recorder struct {
	store     Store
	refresher Refresher

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// NewRecorder creates a Recorder. refresher may be nil.
func NewRecorder(store Store, refresher Refresher) *Recorder {
	return &Recorder{
		store:     store,
		refresher: refresher,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Percentage returns round(score/total*100), or 0 for an empty session.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Finalize builds the result record and persists it. The record is returned
// even when the save fails: the learner still sees their score, the caller
// only surfaces that progress may not have been saved. A successful save
// triggers a best-effort stats recompute.
func (r *Recorder) Finalize(ctx context.Context, out Outcome) (ExerciseResult, error) {
	result := ExerciseResult{
		ID:             r.newID(),
		UserID:         out.UserID,
		Subject:        out.Subject,
		Topic:          out.Topic,
		Difficulty:     out.Difficulty,
		Score:          out.Score,
		TotalQuestions: out.TotalQuestions,
		Percentage:     Percentage(out.Score, out.TotalQuestions),
		CompletedAt:    r.now(),
	}

	if err := r.store.SaveResult(ctx, result); err != nil {
		return result, err
	}

	if r.refresher != nil {
		_ = r.refresher.Recompute(ctx, out.UserID)
	}
	return result, nil
}
