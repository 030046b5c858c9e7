package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ermek/bilim/internal/results"
)

var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func res(subject, topic string, pct int, completed time.Time) results.ExerciseResult {
	return results.ExerciseResult{
		ID:          "r-" + completed.Format("20060102150405"),
		UserID:      "u1",
		Subject:     subject,
		Topic:       topic,
		Percentage:  pct,
		CompletedAt: completed,
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestCompute_EmptyHistory(t *testing.T) {
	got := Compute(nil, testNow)

	if got.TotalExercises != 0 || got.AverageScore != 0 || got.Streak != 0 {
		t.Errorf("empty history produced non-zero counters: %+v", got)
	}
	if got.FavoriteSubject != results.SubjectMath {
		t.Errorf("favorite = %q, want %q", got.FavoriteSubject, results.SubjectMath)
	}
	if got.PerSubject[results.SubjectMath].BestTopic != "Addition" {
		t.Errorf("best topic = %q, want Addition", got.PerSubject[results.SubjectMath].BestTopic)
	}
}

func TestCompute_AverageRounds(t *testing.T) {
	history := []results.ExerciseResult{
		res("Math", "Addition", 33, daysAgo(2)),
		res("Math", "Addition", 34, daysAgo(1)),
	}
	got := Compute(history, testNow)

	// (33+34)/2 = 33.5 rounds up.
	if got.AverageScore != 34 {
		t.Errorf("average = %d, want 34", got.AverageScore)
	}
	if got.TotalExercises != 2 {
		t.Errorf("total = %d, want 2", got.TotalExercises)
	}
	if !got.LastActive.Equal(daysAgo(1)) {
		t.Errorf("last active = %v, want most recent result", got.LastActive)
	}
}

func TestCompute_FavoriteSubjectTieGoesToFirstReachingMax(t *testing.T) {
	// Two of each; Vocabulary hits count 2 before Math does.
	history := []results.ExerciseResult{
		res("Vocabulary", "quiz", 80, daysAgo(4)),
		res("Math", "Addition", 80, daysAgo(3)),
		res("Vocabulary", "quiz", 80, daysAgo(2)),
		res("Math", "Addition", 80, daysAgo(1)),
	}
	got := Compute(history, testNow)

	if got.FavoriteSubject != "Vocabulary" {
		t.Errorf("favorite = %q, want Vocabulary", got.FavoriteSubject)
	}
}

func TestCompute_BestTopicStrictComparison(t *testing.T) {
	// Addition and Division both average 80; Addition was seen first
	// and keeps the title.
	history := []results.ExerciseResult{
		res("Math", "Addition", 80, daysAgo(3)),
		res("Math", "Division", 80, daysAgo(2)),
		res("Vocabulary", "quiz", 100, daysAgo(1)),
	}
	got := Compute(history, testNow)

	math := got.PerSubject["Math"]
	if math.BestTopic != "Addition" {
		t.Errorf("best topic = %q, want Addition", math.BestTopic)
	}
	if math.TotalCompleted != 2 || math.AverageScore != 80 {
		t.Errorf("math rollup = %+v", math)
	}

	vocab := got.PerSubject["Vocabulary"]
	if vocab.TotalCompleted != 1 || vocab.AverageScore != 100 {
		t.Errorf("vocabulary rollup = %+v", vocab)
	}
	if vocab.BestTopic != "" {
		t.Errorf("vocabulary must not carry a best topic, got %q", vocab.BestTopic)
	}
}

func TestCompute_BestTopicOvertakenByHigherAverage(t *testing.T) {
	history := []results.ExerciseResult{
		res("Math", "Addition", 60, daysAgo(3)),
		res("Math", "Subtraction", 90, daysAgo(2)),
	}
	got := Compute(history, testNow)

	if got.PerSubject["Math"].BestTopic != "Subtraction" {
		t.Errorf("best topic = %q, want Subtraction", got.PerSubject["Math"].BestTopic)
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		history []results.ExerciseResult
		want    int
	}{
		{
			name: "three consecutive days ending today",
			history: []results.ExerciseResult{
				res("Math", "Addition", 80, daysAgo(2)),
				res("Math", "Addition", 80, daysAgo(1)),
				res("Math", "Addition", 80, daysAgo(0)),
			},
			want: 3,
		},
		{
			name: "several results on one day count once",
			history: []results.ExerciseResult{
				res("Math", "Addition", 80, daysAgo(1)),
				res("Math", "Division", 60, daysAgo(1).Add(2*time.Hour)),
				res("Vocabulary", "quiz", 100, daysAgo(0)),
			},
			want: 2,
		},
		{
			name: "gap breaks the streak",
			history: []results.ExerciseResult{
				res("Math", "Addition", 80, daysAgo(3)),
				res("Math", "Addition", 80, daysAgo(1)),
				res("Math", "Addition", 80, daysAgo(0)),
			},
			want: 2,
		},
		{
			name: "nothing today means no streak",
			history: []results.ExerciseResult{
				res("Math", "Addition", 80, daysAgo(2)),
				res("Math", "Addition", 80, daysAgo(1)),
			},
			want: 0,
		},
		{
			name:    "empty history",
			history: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.history, testNow); got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

type stubStore struct {
	results []results.ExerciseResult
	err     error
	loads   int
}

func (s *stubStore) SaveResult(context.Context, results.ExerciseResult) error { return nil }

func (s *stubStore) LoadResults(context.Context, string) ([]results.ExerciseResult, error) {
	s.loads++
	return s.results, s.err
}

func TestService_CachesUntilRecompute(t *testing.T) {
	store := &stubStore{results: []results.ExerciseResult{
		res("Math", "Addition", 80, daysAgo(0)),
	}}
	svc := NewService(store)
	svc.now = func() time.Time { return testNow }

	got, err := svc.ForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if got.TotalExercises != 1 || got.Streak != 1 {
		t.Errorf("unexpected rollup: %+v", got)
	}

	// Second read hits the cache.
	if _, err := svc.ForUser(context.Background(), "u1"); err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if store.loads != 1 {
		t.Errorf("loads = %d, want 1", store.loads)
	}

	store.results = append(store.results, res("Math", "Division", 100, daysAgo(0).Add(time.Hour)))
	if err := svc.Recompute(context.Background(), "u1"); err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	got, err = svc.ForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if got.TotalExercises != 2 {
		t.Errorf("total after recompute = %d, want 2", got.TotalExercises)
	}
}

func TestService_PropagatesStoreError(t *testing.T) {
	store := &stubStore{err: errors.New("db locked")}
	svc := NewService(store)

	if _, err := svc.ForUser(context.Background(), "u1"); err == nil {
		t.Fatal("expected error from failing store")
	}
}
