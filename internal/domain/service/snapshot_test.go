package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

func TestSnapshot(t *testing.T) {
	s, ids := newSession(t, uploaded("Arial", "Arial.ttf"), system("serif"))
	clone, err := s.Registry.Clone(ids[1], entity.CloneLanguageSpecific)
	require.NoError(t, err)
	require.NoError(t, s.Overrides.SetFallbackOverride("ja", clone))
	require.NoError(t, s.AddLanguage("ja", false))
	require.NoError(t, s.SetHeaderStyle(entity.H2, entity.HeaderStyle{
		Scale:        1.6,
		LineHeight:   1.3,
		AssignedRole: entity.HeaderRoleSecondary,
	}))

	snap := service.Snapshot(s, catalog)

	assert.Equal(t, "Inter", snap.PrimaryFamily)
	assert.Equal(t, "Arial", snap.SecondaryFamily)
	assert.Equal(t, []string{"Inter", "Arial", "serif"}, snap.Stack)
	assert.Equal(t, "Arial", snap.FamilyOf(clone), "hidden clones share the canonical family")

	require.Len(t, snap.Faces, 2)
	assert.Equal(t, ids[0], snap.Faces[0].Font.ID)
	assert.Equal(t, service.PrimaryScalePercent, snap.Faces[0].ScalePercent)

	require.Len(t, snap.Headers, 6)
	assert.Equal(t, "Inter", snap.Headers[0].Family)
	assert.Equal(t, entity.H2, snap.Headers[1].Tag)
	assert.Equal(t, "Arial", snap.Headers[1].Family)

	require.Contains(t, snap.Resolutions, entity.LanguageID("ja"))
	require.Contains(t, snap.Resolutions, entity.DefaultPrimaryLanguage)
	ja := snap.Resolutions["ja"]
	assert.Equal(t, clone, ja.FontID)
	assert.False(t, snap.InheritsDefault(ja))
	assert.True(t, snap.InheritsDefault(snap.Resolutions[entity.DefaultPrimaryLanguage]))
}

func TestSnapshot_DuplicateVisibleNamesGetSuffix(t *testing.T) {
	s, _ := newSession(t, uploaded("Noto Sans", "NotoSans-Regular.ttf"), uploaded("Noto Sans", "NotoSans-Bold.ttf"))

	snap := service.Snapshot(s, catalog)

	assert.Equal(t, []string{"Inter", "Noto Sans", "Noto Sans 2"}, snap.Stack)
}

func TestSnapshot_IsDeterministic(t *testing.T) {
	s, ids := newSession(t, uploaded("Arial", "Arial.ttf"), uploaded("Roboto", "Roboto.ttf"))
	for _, lang := range []entity.LanguageID{"zh", "ja", "ko", "ar"} {
		require.NoError(t, s.AddLanguage(lang, false))
		require.NoError(t, s.Overrides.SetFallbackOverride(lang, ids[2]))
	}

	assert.Equal(t, service.Snapshot(s, catalog), service.Snapshot(s, catalog))
}
