package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/domain/service"
)

func fontIDs(fonts []*entity.Font) []entity.FontID {
	out := make([]entity.FontID, len(fonts))
	for i, f := range fonts {
		out[i] = f.ID
	}
	return out
}

func TestGroupAndSort_PrimaryOverrideNeverGlobal(t *testing.T) {
	s, ids := newSession(t, uploaded("Arial", "Arial.ttf"))
	override, err := s.Registry.AddLanguageFont(uploaded("Override1", "Override1.ttf"), entity.ClonePrimaryOverride)
	require.NoError(t, err)
	require.NoError(t, s.Overrides.SetPrimaryOverride("en-US", override))
	unreferenced, err := s.Registry.Clone(ids[1], entity.ClonePrimaryOverride)
	require.NoError(t, err)

	g := service.GroupAndSort(s, catalog)

	assert.Equal(t, ids[0], g.Primary.ID)
	assert.Equal(t, []entity.FontID{ids[1]}, fontIDs(g.GlobalFallbackFonts))
	require.Len(t, g.PrimaryOverrides, 2)
	assert.Equal(t, override, g.PrimaryOverrides[0].Font.ID)
	assert.Equal(t, []entity.LanguageID{"en-US"}, g.PrimaryOverrides[0].LanguageIDs)
	assert.Equal(t, unreferenced, g.PrimaryOverrides[1].Font.ID)
	assert.Empty(t, g.PrimaryOverrides[1].LanguageIDs)
	for _, f := range g.GlobalFallbackFonts {
		assert.False(t, f.IsPrimaryOverride)
	}
}

func TestGroupAndSort_Buckets(t *testing.T) {
	s, ids := newSession(t,
		uploaded("Arial", "Arial.ttf"),
		system("serif"),
		uploaded("Inter", "Inter-Italic.ttf"),
	)
	noto, err := s.Registry.AddLanguageFont(uploaded("Noto Sans CJK", "NotoSansCJK.ttc"), entity.CloneLanguageSpecific)
	require.NoError(t, err)
	require.NoError(t, s.Overrides.SetFallbackOverride("zh", noto))
	require.NoError(t, s.Overrides.SetFallbackOverride("xx-unknown", noto))
	require.NoError(t, s.Overrides.SetFallbackOverride("ja", noto))

	g := service.GroupAndSort(s, catalog)

	assert.Equal(t, []entity.FontID{ids[1]}, fontIDs(g.GlobalFallbackFonts), "the primary under another file is not listed twice")
	assert.Equal(t, []entity.FontID{ids[2]}, fontIDs(g.SystemFonts))
	require.Len(t, g.LanguageSpecific, 1)
	assert.Equal(t, noto, g.LanguageSpecific[0].Font.ID)
	assert.Equal(t, []entity.LanguageID{"ja", "zh", "xx-unknown"}, g.LanguageSpecific[0].LanguageIDs)
	assert.Empty(t, g.PrimaryOverrides)
}

func TestGroupAndSort_EmptySession(t *testing.T) {
	g := service.GroupAndSort(entity.NewSession(), catalog)

	assert.Nil(t, g.Primary)
	assert.Empty(t, g.GlobalFallbackFonts)
	assert.Empty(t, g.SystemFonts)
}

func TestSortLanguages(t *testing.T) {
	in := []entity.LanguageID{"zh", "tlh", "fr", "qya", "en-US"}

	out := service.SortLanguages(in, catalog)

	assert.Equal(t, []entity.LanguageID{"en-US", "fr", "zh", "tlh", "qya"}, out)
	assert.Equal(t, []entity.LanguageID{"zh", "tlh", "fr", "qya", "en-US"}, in, "input is not modified")
	assert.Equal(t, in, service.SortLanguages(in, nil))
}
