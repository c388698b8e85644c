package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
)

func TestDefault_CanonicalOrder(t *testing.T) {
	c := Default()
	all := c.All()

	require.Len(t, all, len(builtin))
	for i, lang := range all {
		assert.Equal(t, i, lang.CanonicalIndex)
	}
	assert.Equal(t, entity.DefaultPrimaryLanguage, all[0].ID)
}

func TestDefault_Groups(t *testing.T) {
	c := Default()

	tests := []struct {
		id   entity.LanguageID
		want entity.ScriptGroup
	}{
		{"fr", entity.ScriptLatin},
		{"ru", entity.ScriptCyrillic},
		{"sr", entity.ScriptCyrillic},
		{"el", entity.ScriptGreek},
		{"fa", entity.ScriptArabic},
		{"he", entity.ScriptHebrew},
		{"hi", entity.ScriptDevanagari},
		{"ja", entity.ScriptCJK},
		{"ko", entity.ScriptCJK},
		{"zh-TW", entity.ScriptCJK},
		{"th", entity.ScriptThai},
		{"tlh", entity.ScriptOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, c.Group(tt.id))
		})
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]Entry{{ID: "fr"}, {ID: "fr"}})
	assert.ErrorIs(t, err, entity.ErrInvalidValue)

	_, err = New([]Entry{{ID: ""}})
	assert.ErrorIs(t, err, entity.ErrInvalidValue)

	_, err = New([]Entry{{ID: "custom", Code: "not a tag!"}})
	assert.ErrorIs(t, err, entity.ErrInvalidValue)

	c, err := New([]Entry{{ID: "custom-greek", Code: "el", Name: "Ελληνικά"}})
	require.NoError(t, err)
	lang, ok := c.Lookup("custom-greek")
	require.True(t, ok)
	assert.Equal(t, "el", lang.Code)
	assert.Equal(t, entity.ScriptGreek, lang.Group)
}

func TestCatalog_Resolve(t *testing.T) {
	c := Default()

	known := c.Resolve("zh-CN")
	assert.Equal(t, "zh-Hans-CN", known.Code)

	unknown := c.Resolve("ka")
	assert.Equal(t, "ka", unknown.Code)
	assert.Equal(t, len(builtin), unknown.CanonicalIndex)
}

func TestCatalog_Match(t *testing.T) {
	c := Default()

	lang, ok := c.Match("pt_BR")
	require.True(t, ok)
	assert.Equal(t, entity.LanguageID("pt-BR"), lang.ID)

	lang, ok = c.Match("ja")
	require.True(t, ok)
	assert.Equal(t, entity.LanguageID("ja"), lang.ID)

	_, ok = c.Match("!!")
	assert.False(t, ok)
}
