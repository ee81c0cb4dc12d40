package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	minYear = 1900
	maxYear = 2100

	// Spreadsheet serial day counts: days since 1899-12-30, offset to the
	// Unix epoch. The accepted window covers 1968-2037, which is every
	// statement date a bank export will realistically carry.
	serialEpochOffset = 25569
	serialMin         = 25000
	serialMax         = 65000
	secondsPerDay     = 86400
)

var spanishMonths = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
}

var (
	isoWithTimeRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\s+\d{1,2}:\d{1,2}(:\d{1,2})?$`)
	isoRe           = regexp.MustCompile(`^(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})$`)
	europeanRe      = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})$`)
	europeanShortRe = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})$`)
	monthNameRe     = regexp.MustCompile(`(?i)^(\d{1,2})\s+(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\s+(\d{4})$`)
	dayMonthRe      = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})$`)
)

// ParseDate normalizes a raw date cell to a calendar date. Recognized, in
// order: native date values, spreadsheet serial numbers, ISO with trailing
// time, ISO, DD/MM/YYYY, DD/MM/YY (pivot at 50), day + Spanish month name +
// year, DD/MM with implied current year, and a generic-parse fallback.
// Returns ErrNoDate rather than guessing.
func ParseDate(c Cell) (time.Time, error) {
	if c.Kind == CellDate {
		return checkBounds(dayOf(c.Date))
	}

	if c.Kind == CellNumber && c.Num > serialMin && c.Num < serialMax {
		return checkBounds(fromSerial(c.Num))
	}

	str := strings.Join(strings.Fields(c.String()), " ")
	if str == "" {
		return time.Time{}, ErrNoDate
	}

	// A quoted serial is still a serial.
	if n, err := strconv.ParseFloat(str, 64); err == nil && n > serialMin && n < serialMax {
		return checkBounds(fromSerial(n))
	}

	if m := isoWithTimeRe.FindStringSubmatch(str); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := isoRe.FindStringSubmatch(str); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := europeanRe.FindStringSubmatch(str); m != nil {
		return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}
	if m := europeanShortRe.FindStringSubmatch(str); m != nil {
		year := atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		return makeDate(year, atoi(m[2]), atoi(m[1]))
	}
	if m := monthNameRe.FindStringSubmatch(str); m != nil {
		month := spanishMonths[strings.ToLower(m[2])]
		return makeDate(atoi(m[3]), int(month), atoi(m[1]))
	}
	if m := dayMonthRe.FindStringSubmatch(str); m != nil {
		return makeDate(time.Now().Year(), atoi(m[2]), atoi(m[1]))
	}

	if t, err := dateparse.ParseAny(str); err == nil {
		return checkBounds(dayOf(t))
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrNoDate, str)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// makeDate builds a UTC calendar date, rejecting component overflow (32/01
// must not normalize into February) and out-of-range years.
func makeDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range", ErrNoDate, month)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", ErrNoDate, day)
	}
	return checkBounds(t)
}

func fromSerial(n float64) time.Time {
	secs := int64((n - serialEpochOffset) * secondsPerDay)
	return dayOf(time.Unix(secs, 0).UTC())
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func checkBounds(t time.Time) (time.Time, error) {
	if t.Year() < minYear || t.Year() > maxYear {
		return time.Time{}, fmt.Errorf("%w: year %d outside %d-%d", ErrNoDate, t.Year(), minYear, maxYear)
	}
	return t, nil
}
