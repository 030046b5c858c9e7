package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ermek/bilim/internal/results"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// ResultRepo persists exercise results. It implements results.Store.
type ResultRepo struct {
	db *sql.DB
}

// SaveResult inserts one completed exercise result.
func (r *ResultRepo) SaveResult(ctx context.Context, res results.ExerciseResult) error {
	query, args, err := sqlBuilder.
		Insert("exercise_results").
		Columns(
			"id", "user_id", "subject", "topic", "difficulty",
			"score", "total_questions", "percentage", "completed_at",
		).
		Values(
			res.ID, res.UserID, res.Subject, res.Topic, res.Difficulty,
			res.Score, res.TotalQuestions, res.Percentage, res.CompletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// LoadResults returns the user's full history, newest first.
func (r *ResultRepo) LoadResults(ctx context.Context, userID string) ([]results.ExerciseResult, error) {
	query, args, err := sqlBuilder.
		Select(
			"id", "user_id", "subject", "topic", "difficulty",
			"score", "total_questions", "percentage", "completed_at",
		).
		From("exercise_results").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completed_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var history []results.ExerciseResult
	for rows.Next() {
		var res results.ExerciseResult
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.Subject, &res.Topic, &res.Difficulty,
			&res.Score, &res.TotalQuestions, &res.Percentage, &res.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		history = append(history, res)
	}
	return history, rows.Err()
}

// RecentResults returns the user's latest results, capped at limit.
func (r *ResultRepo) RecentResults(ctx context.Context, userID string, limit int) ([]results.ExerciseResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query, args, err := sqlBuilder.
		Select(
			"id", "user_id", "subject", "topic", "difficulty",
			"score", "total_questions", "percentage", "completed_at",
		).
		From("exercise_results").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("completed_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	defer rows.Close()

	var recent []results.ExerciseResult
	for rows.Next() {
		var res results.ExerciseResult
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.Subject, &res.Topic, &res.Difficulty,
			&res.Score, &res.TotalQuestions, &res.Percentage, &res.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		recent = append(recent, res)
	}
	return recent, rows.Err()
}

// DeleteResults wipes the user's history.
func (r *ResultRepo) DeleteResults(ctx context.Context, userID string) error {
	query, args, err := sqlBuilder.
		Delete("exercise_results").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete results: %w", err)
	}
	return nil
}
