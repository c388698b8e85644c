package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
)

func TestNewSession_Defaults(t *testing.T) {
	s := entity.NewSession()

	assert.Equal(t, 0, s.Registry.Len())
	assert.Equal(t, entity.DefaultBaseFontSize, s.BaseFontSize)
	assert.Equal(t, entity.DefaultBaseLineHeight, s.BaseLineHeight)
	require.Len(t, s.HeaderStyles, 6)
	assert.Equal(t, 2.0, s.HeaderStyles[entity.H1].Scale)
	assert.Equal(t, entity.HeaderRolePrimary, s.HeaderStyles[entity.H6].AssignedRole)
	assert.True(t, s.IsPrimaryLanguage(entity.DefaultPrimaryLanguage))
}

func TestSession_AddLanguage(t *testing.T) {
	s := entity.NewSession()

	require.NoError(t, s.AddLanguage("ja", false))
	require.NoError(t, s.AddLanguage("de", true))
	require.NoError(t, s.AddLanguage("ja", true))
	require.ErrorIs(t, s.AddLanguage("", false), entity.ErrInvalidValue)

	assert.Equal(t, []entity.LanguageID{"ja", "de"}, s.ConfiguredLanguages.IDs())
	assert.Equal(t, []entity.LanguageID{"de", "ja"}, s.PrimaryLanguages.IDs())
	assert.False(t, s.IsPrimaryLanguage(entity.DefaultPrimaryLanguage), "explicit primaries replace the default")
}

func TestSession_RemoveLanguageDropsOverrides(t *testing.T) {
	s := entity.NewSession()
	id, err := s.Registry.Load("Inter", entity.UploadedSource{FileName: "Inter.ttf"})
	require.NoError(t, err)
	require.NoError(t, s.AddLanguage("de", true))
	require.NoError(t, s.Overrides.SetPrimaryOverride("de", id))
	lh := 1.8
	require.NoError(t, s.Overrides.SetLineHeightOverride("de", &lh))

	s.RemoveLanguage("de")

	assert.False(t, s.ConfiguredLanguages.Contains("de"))
	assert.False(t, s.PrimaryLanguages.Contains("de"))
	_, ok := s.Overrides.PrimaryOverride("de")
	assert.False(t, ok)
	_, ok = s.Overrides.LineHeightOverride("de")
	assert.False(t, ok)
}

func TestSession_SetHeaderStyle(t *testing.T) {
	tests := []struct {
		name    string
		tag     entity.HeadingTag
		style   entity.HeaderStyle
		wantErr bool
	}{
		{"secondary h2", entity.H2, entity.HeaderStyle{Scale: 1.6, LineHeight: 1.3, AssignedRole: entity.HeaderRoleSecondary}, false},
		{"unknown tag", "h7", entity.HeaderStyle{Scale: 1, LineHeight: 1, AssignedRole: entity.HeaderRolePrimary}, true},
		{"zero scale", entity.H1, entity.HeaderStyle{LineHeight: 1, AssignedRole: entity.HeaderRolePrimary}, true},
		{"negative line height", entity.H1, entity.HeaderStyle{Scale: 1, LineHeight: -1, AssignedRole: entity.HeaderRolePrimary}, true},
		{"unknown role", entity.H3, entity.HeaderStyle{Scale: 1, LineHeight: 1, AssignedRole: "tertiary"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := entity.NewSession()
			before := s.HeaderStyles[tt.tag]

			err := s.SetHeaderStyle(tt.tag, tt.style)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidValue)
				assert.Equal(t, before, s.HeaderStyles[tt.tag])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.style, s.HeaderStyles[tt.tag])
		})
	}
}

func TestLanguageSet(t *testing.T) {
	set := entity.NewLanguageSet("zh", "", "ja", "zh")

	assert.Equal(t, []entity.LanguageID{"zh", "ja"}, set.IDs())
	assert.True(t, set.Add("ko"))
	assert.False(t, set.Add("ja"))
	assert.True(t, set.Remove("zh"))
	assert.False(t, set.Remove("zh"))
	assert.Equal(t, 2, set.Len())

	ids := set.IDs()
	ids[0] = "xx"
	assert.True(t, set.Contains("ja"), "IDs returns a copy")
}
