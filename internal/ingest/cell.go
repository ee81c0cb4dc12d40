package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CellKind tags the native type of a raw cell as produced by a reader.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one raw cell from a tabular source. Spreadsheet readers produce
// mixed string/number/date values; modeling them as a tagged union at the
// ingestion boundary keeps the detector working on text while the field
// normalizers see typed values.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
	Date time.Time
}

// Only bare integers classify as numbers: a value like "1.234" may be a
// European thousands group and must reach the amount parser as text.
var numericCell = regexp.MustCompile(`^-?\d+$`)

// NewCell classifies a raw string value into a Cell.
func NewCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	if numericCell.MatchString(s) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Cell{Kind: CellNumber, Text: s, Num: n}
		}
	}
	return Cell{Kind: CellText, Text: s}
}

// DateCell wraps a native spreadsheet date value.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

// String returns the cell normalized to text, for delimiter and keyword
// logic. Typed interpretation happens only inside the field normalizers.
func (c Cell) String() string {
	if c.Kind == CellDate {
		return c.Date.Format("2006-01-02")
	}
	return c.Text
}

// IsEmpty reports whether the cell holds no content.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind != CellDate && strings.TrimSpace(c.Text) == "")
}

// rowIsBlank reports whether every cell of a row is empty.
func rowIsBlank(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
