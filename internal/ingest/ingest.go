// Package ingest implements the statement ingestion pipeline: file-type
// dispatch, tabular extraction, header and column detection, per-row record
// building, and deduplication against existing data.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yadira-sys/finanzas-personales/internal/model"
)

// Pipeline parses bank-statement files into normalized transactions.
type Pipeline struct {
	log zerolog.Logger
}

// New creates a Pipeline.
func New(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// FileResult is the outcome of parsing a single file.
type FileResult struct {
	File         string
	Transactions []model.Transaction
	Skipped      int // blank and metadata rows
	Errored      int // rows rejected by the record builder
}

// BatchFile pairs a file with its result or failure inside a batch.
type BatchFile struct {
	File       string
	Result     *FileResult
	Unique     []model.Transaction
	Duplicates int
	Err        error
}

// BatchResult aggregates a multi-file ingestion run.
type BatchResult struct {
	Files  []BatchFile
	Unique []model.Transaction
}

// Duplicates returns the total duplicate count across the batch.
func (b *BatchResult) Duplicates() int {
	n := 0
	for _, f := range b.Files {
		n += f.Duplicates
	}
	return n
}

// Failed returns the files that could not be parsed.
func (b *BatchResult) Failed() []BatchFile {
	var failed []BatchFile
	for _, f := range b.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// ParseFile dispatches on the file extension and parses a single statement.
func (p *Pipeline) ParseFile(path string) (*FileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	var rows [][]Cell
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(f)
	case ".xlsx":
		rows, err = readXLSX(f)
	case ".xls":
		rows, err = readXLS(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("extracting rows from %s: %w", name, err)
	}

	return p.parseRows(name, rows)
}

// ParseCSV parses an already-open CSV stream. Exposed for collaborators that
// hold file contents rather than paths.
func (p *Pipeline) ParseCSV(name string, r io.Reader) (*FileResult, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("extracting rows from %s: %w", name, err)
	}
	return p.parseRows(name, rows)
}

// parseRows runs detection and record building over extracted rows.
func (p *Pipeline) parseRows(name string, rows [][]Cell) (*FileResult, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyFile
	}

	headerIdx := FindHeaderRow(rows)
	cols := MapColumns(rows[headerIdx])

	if !cols.Usable() {
		if cols.Empty() {
			return nil, ErrColumnsNotFound
		}
		return nil, ErrColumnsInsufficient
	}
	p.log.Debug().Str("file", name).Int("header_row", headerIdx).
		Msg("columns identified")

	res := &FileResult{File: name}
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 || rowIsBlank(row) {
			res.Skipped++
			continue
		}
		if IsMetadataRow(row) {
			res.Skipped++
			continue
		}
		row = RepairSplitDecimals(row, len(rows[headerIdx]), cols)

		t, err := BuildRecord(row, cols)
		if err != nil {
			res.Errored++
			p.log.Warn().Str("file", name).Int("row", i+1).Err(err).
				Msg("row skipped")
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}

	p.log.Info().Str("file", name).
		Int("transactions", len(res.Transactions)).
		Int("skipped", res.Skipped).
		Int("errored", res.Errored).
		Msg("file parsed")

	if len(res.Transactions) == 0 {
		return nil, ErrNoTransactions
	}
	return res, nil
}

// ProcessBatch parses files one at a time, deduplicating each file's output
// against the existing transaction set and everything already accepted in
// this batch. One file's failure never aborts the others.
func (p *Pipeline) ProcessBatch(paths []string, existing []model.Transaction) *BatchResult {
	deduper := NewDeduper(existing)
	batch := &BatchResult{}

	for _, path := range paths {
		bf := BatchFile{File: filepath.Base(path)}

		res, err := p.ParseFile(path)
		if err != nil {
			bf.Err = err
			p.log.Error().Str("file", bf.File).Err(err).Msg("file failed")
			batch.Files = append(batch.Files, bf)
			continue
		}

		unique, duplicates := deduper.Filter(res.Transactions)
		bf.Result = res
		bf.Unique = unique
		bf.Duplicates = len(duplicates)
		batch.Files = append(batch.Files, bf)
		batch.Unique = append(batch.Unique, unique...)
	}

	return batch
}

// Reason turns a file-level failure into the human-readable string surfaced
// to the user.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return "formato de archivo no soportado"
	case errors.Is(err, ErrEmptyFile):
		return "el archivo está vacío o no tiene datos"
	case errors.Is(err, ErrColumnsNotFound):
		return "no se pudieron identificar las columnas del archivo"
	case errors.Is(err, ErrColumnsInsufficient):
		return "faltan columnas necesarias (fecha + importe/cargo/abono)"
	case errors.Is(err, ErrNoTransactions):
		return "no se pudieron extraer transacciones válidas"
	default:
		return err.Error()
	}
}
