package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_FormatSymmetry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"european grouping", "1.234,56", "1234.56"},
		{"anglo grouping", "1,234.56", "1234.56"},
		{"parenthesized negative", "(50,00)", "-50.00"},
		{"leading minus", "-50,00", "-50.00"},
		{"plain integer", "45", "45.00"},
		{"plain decimal", "45.30", "45.30"},
		{"comma decimal", "45,30", "45.30"},
		{"negative comma decimal", "-45,30", "-45.30"},
		{"euro symbol", "€ 1.234,56", "1234.56"},
		{"dollar symbol", "$1,234.56", "1234.56"},
		{"dot thousands only", "1.234", "1234.00"},
		{"comma thousands only", "1,234,567", "1234567.00"},
		{"debe marker", "50,00 DEBE", "-50.00"},
		{"haber marker", "50,00 haber", "50.00"},
		{"large european", "12.345.678,90", "12345678.90"},
		{"single decimal digit", "7,5", "7.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(NewCell(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseAmount_NumberCell(t *testing.T) {
	got, err := ParseAmount(NewCell("-1500"))
	require.NoError(t, err)
	assert.Equal(t, "-1500.00", got.StringFixed(2))

	// Raw spreadsheet floats arrive as text and keep their 1-2 digit decimals.
	got, err = ParseAmount(NewCell("-1500.75"))
	require.NoError(t, err)
	assert.Equal(t, "-1500.75", got.StringFixed(2))
}

func TestParseAmount_Unparseable(t *testing.T) {
	tests := []string{"", "   ", "-", "abc", "€", "()"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(NewCell(in))
			assert.Error(t, err, "input %q", in)
		})
	}
}

func TestParseAmount_NeverDefaultsToZero(t *testing.T) {
	_, err := ParseAmount(NewCell("no es un numero"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadAmount)
}
