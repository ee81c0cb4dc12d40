package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// candidate delimiters, checked against the first line of a CSV.
var csvDelimiters = []rune{',', ';', '|', '\t'}

// DetectDelimiter counts candidate delimiter occurrences in the first line
// and picks the most frequent one. Comma wins ties and empty input.
func DetectDelimiter(firstLine string) rune {
	detected := ','
	maxCount := 0
	for _, d := range csvDelimiters {
		if n := strings.Count(firstLine, string(d)); n > maxCount {
			maxCount = n
			detected = d
		}
	}
	return detected
}

// readCSV decodes a CSV stream into rows of cells. The delimiter is sniffed
// from the first line; quoting follows RFC 4180 with lazy quotes so the
// looser bank exports still parse.
func readCSV(r io.Reader) ([][]Cell, error) {
	br := bufio.NewReader(r)

	firstLine, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading first line: %w", err)
	}
	delim := DetectDelimiter(firstLine)

	cr := csv.NewReader(io.MultiReader(strings.NewReader(firstLine), br))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows [][]Cell
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		row := make([]Cell, len(record))
		for i, v := range record {
			row[i] = NewCell(v)
		}
		if rowIsBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
