package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readXLSX decodes the first sheet of an .xlsx workbook into rows of cells.
// Raw cell values are requested so date cells arrive as spreadsheet serial
// numbers, which the date normalizer understands.
func readXLSX(r io.Reader) ([][]Cell, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var rows [][]Cell
	for _, record := range records {
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
