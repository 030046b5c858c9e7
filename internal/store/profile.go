package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ermek/bilim/internal/profile"
)

// ErrNoProfile is returned when no profile has been created yet.
var ErrNoProfile = errors.New("no profile")

// ProfileRepo persists the single local learner profile.
type ProfileRepo struct {
	db *sql.DB
}

// Save inserts or replaces the profile.
func (r *ProfileRepo) Save(ctx context.Context, p profile.Profile) error {
	query, args, err := sqlBuilder.
		Insert("profiles").
		Columns("id", "name", "language", "grade", "created_at").
		Values(p.ID, p.Name, p.Language, p.Grade, p.CreatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET name=excluded.name, language=excluded.language, grade=excluded.grade").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Load returns the profile, or ErrNoProfile on a fresh install.
func (r *ProfileRepo) Load(ctx context.Context) (profile.Profile, error) {
	query, args, err := sqlBuilder.
		Select("id", "name", "language", "grade", "created_at").
		From("profiles").
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return profile.Profile{}, fmt.Errorf("build select: %w", err)
	}

	var p profile.Profile
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.Name, &p.Language, &p.Grade, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return profile.Profile{}, ErrNoProfile
	}
	if err != nil {
		return profile.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// Delete removes the profile.
func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
