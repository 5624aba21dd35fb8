package coerce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"1,234.5", 1234.5, true},
		{"$12", 12, true},
		{"30 kg", 30, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"-", 0, false},
		{"1.2.3", 0, false},
		{"2020-01-01", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNumberKey(t *testing.T) {
	assert.Equal(t, 7.0, NumberKey("7"))
	assert.True(t, math.IsInf(NumberKey("n/a"), -1))
	assert.Less(t, NumberKey(""), NumberKey("-1e300"))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		spec   string
		locale string
		want   string
	}{
		{"grouped integer rounds half up", "1234.5", "N0", "", "1,235"},
		{"grouped default decimals", "1234.567", "N", "en-US", "1,234.57"},
		{"grouped german", "1234.5", "N2", "de-DE", "1.234,50"},
		{"percent", "0.5", "P0", "", "50%"},
		{"percent default decimals", "0.1234", "P", "", "12.34%"},
		{"integer padded", "42", "D5", "", "00042"},
		{"integer padded negative", "-42", "D5", "", "-00042"},
		{"integer rounds", "41.5", "D", "", "42"},
		{"general significant digits", "1234.5", "G3", "", "1,230"},
		{"general small value", "0.000123456", "G3", "", "0.000123"},
		{"general default", "1234.5", "G", "", "1,234.5"},
		{"currency usd", "1234.5", "C", "en-US", "$1,234.50"},
		{"currency usd negative", "-5", "C", "en-US", "-$5.00"},
		{"currency jpy", "1234.5", "C", "ja-JP", "￥1,235"},
		{"currency symbol after amount", "1234.5", "C", "de-DE", "1.234,50\u00a0$"},
		{"currency symbol after negative amount", "-1234.5", "C", "de-DE", "-1.234,50\u00a0$"},
		{"currency precision with symbol after amount", "1234.5", "C0", "de-DE", "1.235\u00a0$"},
		{"currency with precision", "3", "C1", "en-US", "$3.0"},
		{"lower-case kind", "1234.5", "n1", "", "1,234.5"},
		{"strips noise before formatting", "$1,234.5", "N1", "", "1,234.5"},
		{"not a number passes through", "abc", "N2", "", "abc"},
		{"unknown kind", "12.5", "X", "", "12.5"},
		{"malformed spec", "12.5", "N-2", "", "12.5"},
		{"no spec", "12.50", "", "", "12.5"},
		{"bad locale", "12.5", "N2", "not a locale!!", "12.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.raw, tt.spec, tt.locale))
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(2.5, 0))
	assert.Equal(t, -3.0, roundHalfUp(-2.5, 0))
	assert.Equal(t, 1.3, roundHalfUp(1.25, 1))
}
