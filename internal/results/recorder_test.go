package results

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	saved   []ExerciseResult
	saveErr error
}

func (f *fakeStore) SaveResult(_ context.Context, r ExerciseResult) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeStore) LoadResults(context.Context, string) ([]ExerciseResult, error) {
	out := make([]ExerciseResult, len(f.saved))
	copy(out, f.saved)
	return out, nil
}

type fakeRefresher struct {
	calls int
}

func (f *fakeRefresher) Recompute(context.Context, string) error {
	f.calls++
	return nil
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{3, 5, 60},
		{5, 5, 100},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestFinalize_SavesAndRefreshes(t *testing.T) {
	store := &fakeStore{}
	refresher := &fakeRefresher{}
	rec := NewRecorder(store, refresher)
	rec.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	rec.newID = func() string { return "fixed-id" }

	result, err := rec.Finalize(context.Background(), Outcome{
		UserID:         "u1",
		Subject:        SubjectMath,
		Topic:          "Addition",
		Difficulty:     "Easy",
		Score:          3,
		TotalQuestions: 5,
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if result.ID != "fixed-id" || result.Percentage != 60 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(store.saved))
	}
	if refresher.calls != 1 {
		t.Errorf("refresher called %d times, want 1", refresher.calls)
	}
}

func TestFinalize_SaveFailureStillReturnsResult(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	refresher := &fakeRefresher{}
	rec := NewRecorder(store, refresher)

	result, err := rec.Finalize(context.Background(), Outcome{
		UserID: "u1", Subject: SubjectMath, Topic: "Addition",
		Difficulty: "Easy", Score: 4, TotalQuestions: 5,
	})
	if err == nil {
		t.Fatal("expected save error to propagate")
	}
	// The learner still gets their score.
	if result.Score != 4 || result.Percentage != 80 {
		t.Errorf("result not computed on failure: %+v", result)
	}
	if refresher.calls != 0 {
		t.Errorf("refresher should not run on failed save, got %d calls", refresher.calls)
	}
}
