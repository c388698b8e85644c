package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/repository"
	"github.com/bnema/fontstack/internal/logging"
)

const (
	getProfileQuery = `SELECT name, document, created_at, updated_at FROM profiles WHERE name = ?`

	// created_at survives a replace
	saveProfileQuery = `INSERT INTO profiles (name, document, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`

	deleteProfileQuery = `DELETE FROM profiles WHERE name = ?`
	listProfilesQuery  = `SELECT name, document, created_at, updated_at FROM profiles ORDER BY name`
)

type profileRepo struct {
	provider port.DatabaseProvider
}

// NewProfileRepository creates a SQLite-backed profile repository. The
// database is opened through provider on first use.
func NewProfileRepository(provider port.DatabaseProvider) repository.ProfileRepository {
	return &profileRepo{provider: provider}
}

func (r *profileRepo) Get(ctx context.Context, name string) (*entity.Profile, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("profile", name).Msg("getting profile")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, getProfileQuery, name)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %q: %w", name, err)
	}
	return profile, nil
}

func (r *profileRepo) Save(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil: %w", entity.ErrInvalidValue)
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("profile", profile.Name).Int("bytes", len(profile.Document)).Msg("saving profile")

	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	createdAt := profile.CreatedAt
	if createdAt.IsZero() {
		createdAt = profile.UpdatedAt
	}
	_, err = db.ExecContext(ctx, saveProfileQuery,
		profile.Name,
		profile.Document,
		createdAt.UnixMilli(),
		profile.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %q: %w", profile.Name, err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, name string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deleteProfileQuery, name); err != nil {
		return fmt.Errorf("failed to delete profile %q: %w", name, err)
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]*entity.Profile, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listProfilesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []*entity.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*entity.Profile, error) {
	var (
		p         entity.Profile
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&p.Name, &p.Document, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &p, nil
}
