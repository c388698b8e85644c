// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// ProfileRepository defines operations for named profile persistence.
type ProfileRepository interface {
	// Get retrieves a profile by name.
	// Returns nil if the profile does not exist.
	Get(ctx context.Context, name string) (*entity.Profile, error)

	// Save inserts or replaces a profile. CreatedAt is kept on replace.
	Save(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile. Deleting a missing profile is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]*entity.Profile, error)
}
