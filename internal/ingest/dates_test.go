package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_SupportedFormats(t *testing.T) {
	jan15 := date(2024, 1, 15)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"european", "15/01/2024", jan15},
		{"european dashes", "15-01-2024", jan15},
		{"european dots", "15.01.2024", jan15},
		{"iso", "2024-01-15", jan15},
		{"iso slashes", "2024/01/15", jan15},
		{"iso with time", "2024-01-15 14:32:00", jan15},
		{"iso with short time", "2024-01-15 9:05", jan15},
		{"spanish month name", "15 enero 2024", jan15},
		{"spanish month name uppercase", "15 ENERO 2024", jan15},
		{"spreadsheet serial", "45306", jan15},
		{"short year 2000s", "15/01/24", jan15},
		{"short year 1900s", "15/01/99", date(1999, 1, 15)},
		{"extra whitespace", "  15   enero   2024 ", jan15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(NewCell(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate_ImpliedCurrentYear(t *testing.T) {
	got, err := ParseDate(NewCell("15/01"))
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseDate_NativeDateCell(t *testing.T) {
	got, err := ParseDate(DateCell(time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 1), got)
}

func TestParseDate_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "not a date"},
		{"year below range", "15/01/1899"},
		{"year above range", "2101-01-15"},
		{"month overflow", "15/13/2024"},
		{"day overflow", "32/01/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(NewCell(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseDate_SameDateAcrossFormats(t *testing.T) {
	inputs := []string{"15/01/2024", "2024-01-15", "15 enero 2024"}
	for _, in := range inputs {
		got, err := ParseDate(NewCell(in))
		require.NoError(t, err, in)
		assert.Equal(t, date(2024, 1, 15), got, in)
	}
}
