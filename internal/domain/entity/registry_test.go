package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFont(name, file string) *Font {
	return &Font{
		Name: name,
		Source: UploadedSource{
			FileName: file,
			URL:      "blob:" + file,
			Metadata: &FontMetadata{FamilyName: name, GlyphCount: 120},
		},
	}
}

func ghostFont(name, file string) *Font {
	return &Font{Name: name, Source: UploadedSource{FileName: file}}
}

func systemFont(name string) *Font {
	return &Font{Name: name, Source: SystemSource{}}
}

func countPrimary(r *FontRegistry) int {
	n := 0
	for _, f := range r.Fonts() {
		if f.Role == RolePrimary {
			n++
		}
	}
	return n
}

func ids(fonts []*Font) []FontID {
	out := make([]FontID, len(fonts))
	for i, f := range fonts {
		out[i] = f.ID
	}
	return out
}

// newStack builds [Inter (primary), Arial, Roboto].
func newStack(t *testing.T) (*FontRegistry, FontID, FontID, FontID) {
	t.Helper()
	r := NewFontRegistry()
	p, err := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	require.NoError(t, err)
	a, err := r.AddFallback(uploadedFont("Arial", "Arial.ttf"))
	require.NoError(t, err)
	b, err := r.AddFallback(uploadedFont("Roboto", "Roboto.ttf"))
	require.NoError(t, err)
	return r, p, a, b
}

func TestFontRegistry_FirstUploadBecomesPrimary(t *testing.T) {
	r, p, a, _ := newStack(t)

	primary := r.Primary()
	require.NotNil(t, primary)
	assert.Equal(t, p, primary.ID)
	assert.Equal(t, RolePrimary, primary.Role)

	arial, ok := r.Get(a)
	require.True(t, ok)
	assert.Equal(t, RoleFallback, arial.Role)
	assert.Equal(t, 1, countPrimary(r))
}

func TestFontRegistry_SystemFontCannotStartStack(t *testing.T) {
	r := NewFontRegistry()

	_, err := r.AddFallback(systemFont("sans-serif"))

	require.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
	assert.Equal(t, 0, r.Len())
}

func TestFontRegistry_AddFallback_SkipsLoadedDuplicate(t *testing.T) {
	r, _, _, _ := newStack(t)

	_, err := r.AddFallback(uploadedFont("Arial", "arial.TTF"))
	require.ErrorIs(t, err, ErrDuplicateFont)
	assert.Equal(t, 3, r.Len())

	res := r.AddFallbackBatch([]*Font{
		uploadedFont("Arial", "Arial.ttf"),
		uploadedFont("Noto Sans", "NotoSans.ttf"),
		systemFont(""),
	})
	assert.Equal(t, 1, res.Duplicates)
	assert.Len(t, res.Added, 1)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 2, res.Rejected[0].Index)
	assert.ErrorIs(t, res.Rejected[0].Err, ErrInvalidValue)
	assert.Equal(t, 4, r.Len())
}

func TestFontRegistry_AddFallback_LanguageCloneCountsAsLoaded(t *testing.T) {
	r, _, _, _ := newStack(t)
	_, err := r.AddLanguageFont(uploadedFont("Noto Sans JP", "NotoSansJP.otf"), CloneLanguageSpecific)
	require.NoError(t, err)

	_, err = r.AddFallback(uploadedFont("Noto Sans JP", "NotoSansJP.otf"))

	assert.ErrorIs(t, err, ErrDuplicateFont)
	assert.Equal(t, 4, r.Len())
}

func TestFontRegistry_AddFallback_AugmentsGhost(t *testing.T) {
	r := NewFontRegistry()
	_, err := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	require.NoError(t, err)
	ghostID, err := r.AddFallback(ghostFont("Arial", "Arial.ttf"))
	require.NoError(t, err)

	ghost, _ := r.Get(ghostID)
	require.True(t, ghost.IsGhost())

	res := r.AddFallbackBatch([]*Font{uploadedFont("Arial", "Arial.ttf")})

	assert.Equal(t, []FontID{ghostID}, res.Augmented)
	assert.Empty(t, res.Added)
	assert.Zero(t, res.Duplicates)
	assert.Equal(t, 2, r.Len())

	filled, _ := r.Get(ghostID)
	assert.True(t, filled.HasGlyphData())
	assert.Equal(t, "blob:Arial.ttf", filled.URL())
	assert.Equal(t, 1, r.IndexOf(ghostID))
}

func TestFontRegistry_AddFallback_GhostOverGhostIsDuplicate(t *testing.T) {
	r, _, _, _ := newStack(t)
	_, err := r.AddFallback(ghostFont("Lato", "Lato.ttf"))
	require.NoError(t, err)

	_, err = r.AddFallback(ghostFont("Lato", "lato.ttf"))

	assert.ErrorIs(t, err, ErrDuplicateFont)
}

func TestFontRegistry_AddFallback_SystemDuplicatesByNormalizedName(t *testing.T) {
	r, _, _, _ := newStack(t)
	_, err := r.AddFallback(systemFont("sans-serif"))
	require.NoError(t, err)

	_, err = r.AddFallback(systemFont("Sans Serif"))

	assert.ErrorIs(t, err, ErrDuplicateFont)
}

func TestFontRegistry_Reorder_SystemFontNeverPromoted(t *testing.T) {
	r, _, _, _ := newStack(t)
	sys, err := r.AddFallback(systemFont("serif"))
	require.NoError(t, err)
	before := r.Fonts()

	err = r.Reorder(r.IndexOf(sys), 0)
	require.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
	assert.Equal(t, before, r.Fonts())

	err = r.SetPrimary(sys)
	require.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
	assert.Equal(t, before, r.Fonts())
}

func TestFontRegistry_Reorder_FromPrimaryOntoSystemFails(t *testing.T) {
	r := NewFontRegistry()
	_, err := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	require.NoError(t, err)
	_, err = r.AddFallback(systemFont("serif"))
	require.NoError(t, err)
	_, err = r.AddFallback(uploadedFont("Arial", "Arial.ttf"))
	require.NoError(t, err)
	before := r.Fonts()

	err = r.Reorder(0, 2)

	require.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
	assert.Equal(t, before, r.Fonts())
}

func TestFontRegistry_Reorder(t *testing.T) {
	tests := []struct {
		name        string
		from, to    int
		wantOrder   []int // indices into the original order
		wantPrimary int
	}{
		{name: "promote swaps with primary", from: 2, to: 0, wantOrder: []int{2, 1, 0, 3}, wantPrimary: 2},
		{name: "move primary down", from: 0, to: 2, wantOrder: []int{1, 2, 0, 3}, wantPrimary: 1},
		{name: "move among fallbacks", from: 1, to: 3, wantOrder: []int{0, 2, 3, 1}, wantPrimary: 0},
		{name: "same index", from: 2, to: 2, wantOrder: []int{0, 1, 2, 3}, wantPrimary: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, _ := newStack(t)
			_, err := r.AddFallback(uploadedFont("Lato", "Lato.ttf"))
			require.NoError(t, err)
			original := ids(r.Fonts())

			require.NoError(t, r.Reorder(tt.from, tt.to))

			want := make([]FontID, len(tt.wantOrder))
			for i, idx := range tt.wantOrder {
				want[i] = original[idx]
			}
			assert.Equal(t, want, ids(r.Fonts()))
			assert.Equal(t, original[tt.wantPrimary], r.Primary().ID)
			assert.Equal(t, 1, countPrimary(r))
		})
	}
}

func TestFontRegistry_SetPrimary_DemotesPreviousToVacatedSlot(t *testing.T) {
	r, p, a, b := newStack(t)

	require.NoError(t, r.SetPrimary(b))

	assert.Equal(t, []FontID{b, a, p}, ids(r.Fonts()))
	old, _ := r.Get(p)
	assert.Equal(t, RoleFallback, old.Role)

	_, err := r.Clone(a, ClonePrimaryOverride)
	require.NoError(t, err)
	clone := r.Fonts()[3]
	require.NoError(t, r.SetPrimary(clone.ID))
	promoted := r.Primary()
	assert.False(t, promoted.IsPrimaryOverride)
	assert.False(t, promoted.IsLanguageSpecific)
}

func TestFontRegistry_Reorder_OutOfRange(t *testing.T) {
	r, _, _, _ := newStack(t)

	assert.ErrorIs(t, r.Reorder(-1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Reorder(0, 3), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.SetPrimary("font-999"), ErrFontNotFound)
}

func TestFontRegistry_Remove_DropsClonesOfSameFile(t *testing.T) {
	r, _, a, _ := newStack(t)
	clone, err := r.Clone(a, CloneLanguageSpecific)
	require.NoError(t, err)

	removed, err := r.Remove(clone)

	require.NoError(t, err)
	assert.ElementsMatch(t, []FontID{a, clone}, removed)
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Has(a))
}

func TestFontRegistry_Remove_LastFont(t *testing.T) {
	r := NewFontRegistry()
	p, err := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	require.NoError(t, err)
	_, err = r.Clone(p, CloneLanguageSpecific)
	require.NoError(t, err)

	_, err = r.Remove(p)

	require.ErrorIs(t, err, ErrCannotRemoveLastFont)
	assert.Equal(t, 2, r.Len())
}

func TestFontRegistry_Remove_PrimaryPromotesNextUpload(t *testing.T) {
	r := NewFontRegistry()
	p, _ := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	s, _ := r.AddFallback(systemFont("serif"))
	a, _ := r.AddFallback(uploadedFont("Arial", "Arial.ttf"))

	_, err := r.Remove(p)

	require.NoError(t, err)
	assert.Equal(t, []FontID{a, s}, ids(r.Fonts()))
	assert.Equal(t, a, r.Primary().ID)
	assert.Equal(t, 1, countPrimary(r))
}

func TestFontRegistry_Remove_PrimaryWithOnlySystemFontsLeft(t *testing.T) {
	r := NewFontRegistry()
	p, _ := r.AddFallback(uploadedFont("Inter", "Inter.ttf"))
	_, _ = r.AddFallback(systemFont("serif"))
	before := r.Fonts()

	_, err := r.Remove(p)

	require.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
	assert.Equal(t, before, r.Fonts())
}

func TestFontRegistry_Load_ReplacesPrimary(t *testing.T) {
	r, p, _, _ := newStack(t)

	id, err := r.Load("", UploadedSource{
		FileName: "SourceSans3.otf",
		Metadata: &FontMetadata{FamilyName: "Source Sans 3", GlyphCount: 900},
	})

	require.NoError(t, err)
	assert.Equal(t, id, r.Primary().ID)
	assert.Equal(t, "Source Sans 3", r.Primary().Name)
	assert.False(t, r.Has(p))
	assert.Equal(t, 3, r.Len())

	_, err = r.Load("Nothing", UploadedSource{})
	assert.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
}

func TestFontRegistry_Load_PromotesFallbackOfSameFile(t *testing.T) {
	r, p, a, b := newStack(t)
	clone, err := r.Clone(a, CloneLanguageSpecific)
	require.NoError(t, err)

	id, err := r.Load("Arial", UploadedSource{
		FileName: "arial.TTF",
		URL:      "blob:new",
		Metadata: &FontMetadata{FamilyName: "Arial", GlyphCount: 900},
	})

	require.NoError(t, err)
	assert.Equal(t, a, id, "the existing entry keeps its id")
	assert.Equal(t, []FontID{a, b, clone}, ids(r.Fonts()))
	assert.False(t, r.Has(p))
	assert.Equal(t, 1, countPrimary(r))

	primary := r.Primary()
	assert.Equal(t, "Arial.ttf", primary.FileName())
	assert.Equal(t, "blob:new", primary.URL())
	assert.Equal(t, 900, primary.Metadata().GlyphCount)

	generic := 0
	for _, f := range r.Find(FileKey("Arial.ttf")) {
		if f.IsGeneric() {
			generic++
		}
	}
	assert.Equal(t, 1, generic)

	removed, err := r.Remove(b)
	require.NoError(t, err)
	assert.Equal(t, []FontID{b}, removed)
}

func TestFontRegistry_ToggleGlobalFallbackStatus(t *testing.T) {
	r, _, _, _ := newStack(t)
	id, err := r.AddLanguageFont(uploadedFont("Noto Sans JP", "NotoSansJP.otf"), CloneLanguageSpecific)
	require.NoError(t, err)

	f, _ := r.Get(id)
	require.True(t, f.IsLanguageSpecific)

	require.NoError(t, r.ToggleGlobalFallbackStatus(id))
	f, _ = r.Get(id)
	assert.False(t, f.IsLanguageSpecific)

	require.NoError(t, r.ToggleGlobalFallbackStatus(id))
	f, _ = r.Get(id)
	assert.False(t, f.IsLanguageSpecific)
}

func TestFontRegistry_AddLanguageFont_ReusesSameKind(t *testing.T) {
	r, _, a, _ := newStack(t)

	first, err := r.AddLanguageFont(ghostFont("Arial", "Arial.ttf"), CloneLanguageSpecific)
	require.NoError(t, err)
	second, err := r.AddLanguageFont(uploadedFont("Arial", "Arial.ttf"), CloneLanguageSpecific)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, a, first)
	clone, _ := r.Get(first)
	assert.True(t, clone.HasGlyphData(), "clone shares glyph data with its live twin")

	_, err = r.AddLanguageFont(systemFont("serif"), ClonePrimaryOverride)
	assert.ErrorIs(t, err, ErrInvalidPrimaryCandidate)
}

func TestFontRegistry_IDsAreNeverReused(t *testing.T) {
	r, _, a, _ := newStack(t)
	_, err := r.Remove(a)
	require.NoError(t, err)

	next, err := r.AddFallback(uploadedFont("Lato", "Lato.ttf"))

	require.NoError(t, err)
	assert.NotEqual(t, a, next)
}

func TestFontRegistry_Rename(t *testing.T) {
	r, _, a, _ := newStack(t)
	serif, _ := r.AddFallback(systemFont("serif"))
	_, _ = r.AddFallback(systemFont("monospace"))

	require.NoError(t, r.Rename(a, "Arial Regular"))
	f, _ := r.Get(a)
	assert.Equal(t, "Arial Regular", f.Name)

	assert.ErrorIs(t, r.Rename(serif, "Mono Space"), ErrDuplicateFont)
	assert.ErrorIs(t, r.Rename(serif, "  "), ErrInvalidValue)
}
