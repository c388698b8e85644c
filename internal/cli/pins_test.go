package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/domain/entity"
)

func TestParseLanguagePin(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    LanguagePin
		wantErr bool
	}{
		{
			name:  "single language",
			value: "fonts/NotoSansJP.otf=ja",
			want:  LanguagePin{Path: "fonts/NotoSansJP.otf", Kind: entity.CloneLanguageSpecific, Languages: []string{"ja"}},
		},
		{
			name:  "several languages with spaces",
			value: "cjk.ttc= zh , ja,,ko ",
			want:  LanguagePin{Path: "cjk.ttc", Kind: entity.CloneLanguageSpecific, Languages: []string{"zh", "ja", "ko"}},
		},
		{
			name:  "path containing equals",
			value: "odd=name.ttf=ar",
			want:  LanguagePin{Path: "odd=name.ttf", Kind: entity.CloneLanguageSpecific, Languages: []string{"ar"}},
		},
		{name: "no separator", value: "font.ttf", wantErr: true},
		{name: "no path", value: "=ja", wantErr: true},
		{name: "no language", value: "font.ttf=", wantErr: true},
		{name: "only commas", value: "font.ttf=,,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguagePin(tt.value, entity.CloneLanguageSpecific)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguagePins(t *testing.T) {
	pins, err := ParseLanguagePins([]string{"a.ttf=de", "b.ttf=fr,it"}, entity.ClonePrimaryOverride)
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, entity.ClonePrimaryOverride, pins[1].Kind)
	assert.Equal(t, []string{"fr", "it"}, pins[1].Languages)

	_, err = ParseLanguagePins([]string{"a.ttf=de", "broken"}, entity.ClonePrimaryOverride)
	require.Error(t, err)

	pins, err = ParseLanguagePins(nil, entity.CloneLanguageSpecific)
	require.NoError(t, err)
	assert.Empty(t, pins)
}
