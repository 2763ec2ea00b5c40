package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Options configures column extraction.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// Missing lists cell tokens (after whitespace trimming) treated as
	// absent observations: they are skipped by ReadColumn and excluded from
	// both counts by CountWhere. nil means the DefaultOptions set; pass an
	// empty non-nil slice to disable missing-value handling entirely.
	Missing []string
}

// DefaultOptions returns the conventional configuration: comma-separated,
// with "", "NA" and "NaN" treated as missing.
func DefaultOptions() Options {
	return Options{Comma: ',', Missing: []string{"", "NA", "NaN"}}
}

var (
	// ErrNoHeader - the input held no header row at all.
	ErrNoHeader = errors.New("dataset: missing header row")

	// ErrUnknownColumn - the header row does not contain the requested column.
	ErrUnknownColumn = errors.New("dataset: unknown column")
)

// ReadColumn extracts one numeric column from header-row CSV data. Missing
// tokens are skipped; any other cell must parse as a float64, and a cell
// that does not is rejected with its row number (row 1 is the header).
// Ragged rows fail the same way encoding/csv reports them.
func ReadColumn(r io.Reader, column string, opts Options) ([]float64, error) {
	var xs []float64
	err := forEachCell(r, column, opts, func(row int, cell string) error {
		if opts.isMissing(cell) {
			return nil
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("dataset: row %d, column %q: %w", row, column, err)
		}
		xs = append(xs, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return xs, nil
}

// LoadColumn is ReadColumn over a file path.
func LoadColumn(path, column string, opts Options) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	return ReadColumn(f, column, opts)
}

// CountWhere scans a categorical column and returns how many non-missing
// cells equal match (successes) out of how many non-missing cells there are
// at all (trials). The pair feeds interval.Proportion directly.
func CountWhere(r io.Reader, column, match string, opts Options) (successes, trials int, err error) {
	err = forEachCell(r, column, opts, func(_ int, cell string) error {
		if opts.isMissing(cell) {
			return nil
		}
		trials++
		if cell == match {
			successes++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return successes, trials, nil
}

// forEachCell drives the CSV reader: resolves the column index from the
// header, then visits the trimmed cell of every data row. Row numbers are
// 1-based and count the header, so the first data row is row 2.
func forEachCell(r io.Reader, column string, opts Options, visit func(row int, cell string) error) error {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return ErrNoHeader
	}
	if err != nil {
		return fmt.Errorf("dataset: header: %w", err)
	}

	idx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("dataset: %w", err)
		}
		if err := visit(row, strings.TrimSpace(record[idx])); err != nil {
			return err
		}
	}
}

// isMissing reports whether a trimmed cell is one of the missing tokens.
func (o Options) isMissing(cell string) bool {
	missing := o.Missing
	if missing == nil {
		missing = DefaultOptions().Missing
	}
	for _, tok := range missing {
		if cell == tok {
			return true
		}
	}
	return false
}
