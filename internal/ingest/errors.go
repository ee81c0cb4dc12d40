package ingest

import "errors"

// File-level and row-level failure taxonomy. Row-level errors are recovered
// locally (skip and continue); file-level errors abort only that file within
// a batch.
var (
	// ErrUnsupportedFormat means the file extension is not .csv/.xlsx/.xls.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyFile means the source had fewer than 2 usable rows.
	ErrEmptyFile = errors.New("file is empty or has no data rows")

	// ErrColumnsNotFound means header detection assigned no column roles at all.
	ErrColumnsNotFound = errors.New("no columns identified")

	// ErrColumnsInsufficient means some roles were assigned but the required
	// date + amount-bearing pair is incomplete.
	ErrColumnsInsufficient = errors.New("required columns missing (need date and amount or debit/credit)")

	// ErrNoTransactions means no row survived record building.
	ErrNoTransactions = errors.New("no valid transactions extracted")

	// ErrNoDate is a row-level failure: the date cell is missing or unparseable.
	ErrNoDate = errors.New("no parseable date")

	// ErrBadAmount is a row-level failure: the amount cell is missing,
	// unparseable, or zero.
	ErrBadAmount = errors.New("no parseable non-zero amount")
)
