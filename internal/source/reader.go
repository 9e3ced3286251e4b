// Package source reads premium request usage report CSV files into usage rows.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pdewey/pburn/internal/model"
)

// Column names expected in the report header. Matching is case-insensitive
// and ignores surrounding whitespace; column order does not matter.
const (
	colUsername  = "username"
	colModel     = "model"
	colDate      = "date"
	colQuantity  = "quantity"
	colNetAmount = "net_amount"
)

// ErrEmptyReport is returned when the file has no header row at all.
var ErrEmptyReport = errors.New("report is empty")

// HeaderError reports a missing required column.
type HeaderError struct {
	Column string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("report header is missing the %q column", e.Column)
}

// RowError reports a rejected cell value. Negative or non-numeric quantities
// are rejected here rather than propagated as NaN into aggregation.
type RowError struct {
	Line   int // 1-based line number in the report, header included
	Column string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: column %q: %s (got %q)", e.Line, e.Column, e.Reason, e.Value)
}

// ReadFile opens and parses a usage report CSV from disk.
func ReadFile(path string) ([]model.UsageRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := ReadReport(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// ReadReport parses a usage report from r. The first row is the header;
// field positions are resolved from it. Blank lines are skipped, absent
// quantity/net_amount cells are treated as 0.
func ReadReport(r io.Reader) ([]model.UsageRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyReport
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.UsageRow
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}

		quantity, err := parseAmount(record, idx.quantity, colQuantity, line)
		if err != nil {
			return nil, err
		}
		if quantity < 0 {
			return nil, &RowError{Line: line, Column: colQuantity, Value: field(record, idx.quantity), Reason: "must not be negative"}
		}
		netAmount, err := parseAmount(record, idx.netAmount, colNetAmount, line)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.UsageRow{
			Username:  field(record, idx.username),
			Model:     field(record, idx.model),
			Date:      field(record, idx.date),
			Quantity:  quantity,
			NetAmount: netAmount,
		})
	}

	return rows, nil
}

type columnIndex struct {
	username  int
	model     int
	date      int
	quantity  int
	netAmount int
}

func resolveColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}

	idx := columnIndex{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colUsername, &idx.username},
		{colModel, &idx.model},
		{colDate, &idx.date},
		{colQuantity, &idx.quantity},
		{colNetAmount, &idx.netAmount},
	} {
		i, ok := pos[want.name]
		if !ok {
			return columnIndex{}, &HeaderError{Column: want.name}
		}
		*want.dst = i
	}
	return idx, nil
}

// field returns the cell at i, tolerating records shorter than the header.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseAmount coerces a numeric cell. Empty cells are 0; anything that does
// not parse as a finite number is rejected.
func parseAmount(record []string, i int, column string, line int) (float64, error) {
	raw := field(record, i)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &RowError{Line: line, Column: column, Value: raw, Reason: "not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &RowError{Line: line, Column: column, Value: raw, Reason: "not a finite number"}
	}
	return v, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
