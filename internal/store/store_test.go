package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ermek/bilim/internal/profile"
	"github.com/ermek/bilim/internal/results"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id string, completed time.Time) results.ExerciseResult {
	return results.ExerciseResult{
		ID:             id,
		UserID:         "u1",
		Subject:        "Math",
		Topic:          "Addition",
		Difficulty:     "Easy",
		Score:          4,
		TotalQuestions: 5,
		Percentage:     80,
		CompletedAt:    completed,
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"profiles", "exercise_results"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		require.Equal(t, table, name)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestResultRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	history, err := repo.LoadResults(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, history)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.SaveResult(ctx, testResult("r1", base)))
	require.NoError(t, repo.SaveResult(ctx, testResult("r2", base.Add(time.Minute))))

	history, err = repo.LoadResults(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	require.Equal(t, "r2", history[0].ID)
	require.Equal(t, "r1", history[1].ID)

	got := history[1]
	require.Equal(t, "Math", got.Subject)
	require.Equal(t, "Addition", got.Topic)
	require.Equal(t, 4, got.Score)
	require.Equal(t, 5, got.TotalQuestions)
	require.Equal(t, 80, got.Percentage)
	require.True(t, got.CompletedAt.Equal(base), "completed_at = %v, want %v", got.CompletedAt, base)
}

func TestResultRepo_LoadScopedToUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	mine := testResult("r1", time.Now().UTC())
	other := testResult("r2", time.Now().UTC())
	other.UserID = "u2"
	require.NoError(t, repo.SaveResult(ctx, mine))
	require.NoError(t, repo.SaveResult(ctx, other))

	history, err := repo.LoadResults(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "r1", history[0].ID)
}

func TestResultRepo_RecentCapped(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 15; i++ {
		res := testResult(fmt.Sprintf("r%02d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.SaveResult(ctx, res))
	}

	recent, err := repo.RecentResults(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	require.Equal(t, "r14", recent[0].ID)
	require.Equal(t, "r05", recent[9].ID)
}

func TestResultRepo_Delete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	require.NoError(t, repo.SaveResult(ctx, testResult("r1", time.Now().UTC())))
	require.NoError(t, repo.DeleteResults(ctx, "u1"))

	history, err := repo.LoadResults(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrNoProfile)

	p := profile.Profile{
		ID:        "u1",
		Name:      "Aidai",
		Language:  "ky",
		Grade:     3,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.Name, got.Name)
	require.Equal(t, p.Language, got.Language)
	require.Equal(t, p.Grade, got.Grade)

	// Saving the same ID updates in place.
	p.Name = "Aigerim"
	require.NoError(t, repo.Save(ctx, p))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Aigerim", got.Name)

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, ErrNoProfile)
}
