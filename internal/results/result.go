// Package results defines the persisted exercise result record and the
// recorder that turns a finished session into one.
package results

import (
	"context"
	"time"
)

// Subjects used by the exercise flows. The store accepts any string so new
// subjects don't require a migration.
const (
	SubjectMath       = "Math"
	SubjectVocabulary = "Vocabulary"
)

// ExerciseResult is the append-only record of one completed session.
// Created exactly once per completed session and never mutated.
type ExerciseResult struct {
	ID             string
	UserID         string
	Subject        string
	Topic          string
	Difficulty     string
	Score          int
	TotalQuestions int
	Percentage     int // 0–100, round(score/total*100)
	CompletedAt    time.Time
}

// Store is the persistence collaborator. Implementations must provide
// at-least-once durability for saves and read-your-writes for loads.
type Store interface {
	// SaveResult appends one result to the user's history.
	SaveResult(ctx context.Context, result ExerciseResult) error

	// LoadResults returns the user's full history, newest first.
	LoadResults(ctx context.Context, userID string) ([]ExerciseResult, error)
}

// Refresher is notified after a successful save so derived statistics can
// be recomputed. Recomputation is best-effort; failures are not propagated
// to the session that just finished.
type Refresher interface {
	Recompute(ctx context.Context, userID string) error
}
