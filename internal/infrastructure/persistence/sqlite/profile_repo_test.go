package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/infrastructure/persistence/sqlite"
)

func TestProfileRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewProfileRepository(newLazyDB(t))

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.Profile{
		Name:      "docs",
		Document:  []byte(`{"version":"1.0"}`),
		CreatedAt: created,
		UpdatedAt: created,
	}))

	got, err := repo.Get(ctx, "docs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "docs", got.Name)
	assert.JSONEq(t, `{"version":"1.0"}`, string(got.Document))
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(created))

	require.NoError(t, repo.Delete(ctx, "docs"))
	got, err = repo.Get(ctx, "docs")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileRepository_ReplaceKeepsCreatedAt(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewProfileRepository(newLazyDB(t))
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	require.NoError(t, repo.Save(ctx, &entity.Profile{Name: "docs", Document: []byte("a"), CreatedAt: first, UpdatedAt: first}))
	require.NoError(t, repo.Save(ctx, &entity.Profile{Name: "docs", Document: []byte("b"), CreatedAt: second, UpdatedAt: second}))

	got, err := repo.Get(ctx, "docs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("b"), got.Document)
	assert.True(t, got.CreatedAt.Equal(first))
	assert.True(t, got.UpdatedAt.Equal(second))
}

func TestProfileRepository_ListOrderedByName(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewProfileRepository(newLazyDB(t))
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, name := range []string{"marketing", "app", "docs"} {
		require.NoError(t, repo.Save(ctx, &entity.Profile{Name: name, Document: []byte(name), UpdatedAt: now}))
	}

	profiles, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "app", profiles[0].Name)
	assert.Equal(t, "docs", profiles[1].Name)
	assert.Equal(t, "marketing", profiles[2].Name)
	assert.True(t, profiles[0].CreatedAt.Equal(now), "zero CreatedAt takes UpdatedAt")
}

func TestProfileRepository_DeleteMissingIsNotError(t *testing.T) {
	repo := sqlite.NewProfileRepository(newLazyDB(t))

	assert.NoError(t, repo.Delete(testCtx(), "nope"))
}

func TestProfileRepository_SaveNil(t *testing.T) {
	repo := sqlite.NewProfileRepository(newLazyDB(t))

	assert.ErrorIs(t, repo.Save(testCtx(), nil), entity.ErrInvalidValue)
}
