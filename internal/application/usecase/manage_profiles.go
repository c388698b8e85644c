package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/repository"
	"github.com/bnema/fontstack/internal/logging"
)

// ErrProfileNotFound is returned when a named profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ManageProfilesUseCase stores sessions as named documents.
type ManageProfilesUseCase struct {
	repo  repository.ProfileRepository
	codec port.SessionCodec
	now   func() time.Time
}

// NewManageProfilesUseCase creates a new profile management use case.
func NewManageProfilesUseCase(repo repository.ProfileRepository, codec port.SessionCodec) *ManageProfilesUseCase {
	return &ManageProfilesUseCase{repo: repo, codec: codec, now: time.Now}
}

// Save encodes s under name, replacing an existing profile of that name.
func (uc *ManageProfilesUseCase) Save(ctx context.Context, name string, s *entity.Session) (*entity.Profile, error) {
	ctx = logging.WithProfile(ctx, name)
	log := logging.FromContext(ctx)
	log.Debug().Msg("saving profile")

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty profile name: %w", entity.ErrInvalidValue)
	}

	doc, err := uc.codec.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	existing, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	now := uc.now().UTC()
	profile := &entity.Profile{Name: name, Document: doc, CreatedAt: now, UpdatedAt: now}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := uc.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	log.Info().Int("bytes", len(doc)).Bool("replaced", existing != nil).Msg("profile saved")
	return profile, nil
}

// Load decodes the named profile against files.
func (uc *ManageProfilesUseCase) Load(
	ctx context.Context,
	name string,
	files []*entity.Font,
	opts port.ImportOptions,
) (*entity.Session, port.ImportReport, error) {
	ctx = logging.WithProfile(ctx, name)
	log := logging.FromContext(ctx)
	log.Debug().Int("files", len(files)).Msg("loading profile")

	profile, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, port.ImportReport{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, port.ImportReport{}, fmt.Errorf("%s: %w", name, ErrProfileNotFound)
	}

	s, report, err := uc.codec.Decode(profile.Document, files, opts)
	if err != nil {
		return nil, report, fmt.Errorf("failed to decode profile: %w", err)
	}

	log.Info().Int("fonts", report.Fonts).Bool("unlinked", report.Unlinked()).Msg("profile loaded")
	return s, report, nil
}

// Document returns the raw document of the named profile.
func (uc *ManageProfilesUseCase) Document(ctx context.Context, name string) ([]byte, error) {
	profile, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrProfileNotFound)
	}
	return profile.Document, nil
}

// List returns every stored profile.
func (uc *ManageProfilesUseCase) List(ctx context.Context) ([]*entity.Profile, error) {
	logging.FromContext(ctx).Debug().Msg("listing profiles")

	profiles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// Delete removes the named profile.
func (uc *ManageProfilesUseCase) Delete(ctx context.Context, name string) error {
	ctx = logging.WithProfile(ctx, name)
	log := logging.FromContext(ctx)
	log.Debug().Msg("deleting profile")

	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	log.Info().Msg("profile deleted")
	return nil
}
