package ingest

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// readXLS decodes the first sheet of a legacy BIFF .xls workbook.
func readXLS(r io.ReadSeeker) ([][]Cell, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmptyFile
	}

	var rows [][]Cell
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		// Rows are sparse; pad leading columns so indices line up.
		row := make([]Cell, 0, r.LastCol())
		for j := 0; j < r.FirstCol(); j++ {
			row = append(row, Cell{Kind: CellEmpty})
		}
		for j := r.FirstCol(); j < r.LastCol(); j++ {
			row = append(row, NewCell(r.Col(j)))
		}
		if rowIsBlank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
