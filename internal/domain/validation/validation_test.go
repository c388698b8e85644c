package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFontFamily(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Inter", false},
		{"  Noto Sans JP ", false},
		{"", true},
		{"   ", true},
		{"Evil\nFont", true},
		{`Arial"; color: red`, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			errs := ValidateFontFamily("fonts.system_fallbacks", tt.value)
			assert.Equal(t, tt.wantErr, len(errs) > 0, errs)
		})
	}
}

func TestValidateFontFamilies_IndexesField(t *testing.T) {
	errs := ValidateFontFamilies("fonts.system_fallbacks", []string{"Georgia", ""})

	assert.Equal(t, []string{"fonts.system_fallbacks[1] cannot be empty"}, errs)
}

func TestValidatePositive(t *testing.T) {
	assert.Empty(t, ValidatePositive("x", 0.5))
	assert.NotEmpty(t, ValidatePositive("x", 0))
	assert.NotEmpty(t, ValidatePositive("x", -1))
	assert.NotEmpty(t, ValidatePositive("x", math.NaN()))
	assert.NotEmpty(t, ValidatePositive("x", math.Inf(1)))
}

func TestValidateIntRange(t *testing.T) {
	assert.Empty(t, ValidateIntRange("n", 4, 0, 64))
	assert.Equal(t, []string{"n must be between 0 and 64 (got: 65)"}, ValidateIntRange("n", 65, 0, 64))
}

func TestValidateLanguageID(t *testing.T) {
	assert.Empty(t, ValidateLanguageID("lang", "zh-Hant-TW"))
	assert.Empty(t, ValidateLanguageID("lang", "pt_BR"))
	assert.NotEmpty(t, ValidateLanguageID("lang", ""))
	assert.NotEmpty(t, ValidateLanguageID("lang", "en US"))
	assert.NotEmpty(t, ValidateLanguageID("lang", "日本"))
	assert.Len(t, ValidateLanguageIDs("langs", []string{"ja", "", "x y"}), 2)
}
