// Package csvfile parses delimited inventory files into model items.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/apothecary-tools/apothecary/internal/model"
	"github.com/apothecary-tools/apothecary/internal/service"
)

// Expected columns, in order: id, name, unit, quantity, amount, criticality.
const fieldCount = 6

var _ service.RecordParser = (*Parser)(nil)

// Parser reads delimited inventory records. The zero value parses
// comma-separated input.
type Parser struct {
	Delimiter rune
}

// NewParser creates a parser for the given field delimiter. A zero delimiter
// means comma.
func NewParser(delimiter rune) *Parser {
	return &Parser{Delimiter: delimiter}
}

// Parse reads all records from r. Malformed rows are skipped with a warning;
// an input consisting only of malformed rows yields an empty slice, not an
// error. A leading header row is detected by its non-numeric id column.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([]model.Item, error) {
	reader := csv.NewReader(r)
	if p.Delimiter != 0 {
		reader.Comma = p.Delimiter
	}
	reader.FieldsPerRecord = -1 // row length is validated per record
	reader.TrimLeadingSpace = true

	items := make([]model.Item, 0)
	line := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.Reader only fails a single row on quoting problems; skip
			// it and keep going.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Count the broken row so later warnings still report the
				// true file position.
				line++
				slog.Warn("Skipping unreadable row", "line", parseErr.Line, "error", err)
				continue
			}
			return nil, fmt.Errorf("failed to read records: %w", err)
		}
		line++

		item, err := parseRecord(record)
		if err != nil {
			if line == 1 && looksLikeHeader(record) {
				slog.Debug("Skipping header row")
				continue
			}
			slog.Warn("Skipping malformed row", "line", line, "error", err)
			continue
		}
		items = append(items, item)
	}

	slog.Debug("Parsed inventory records", "items", len(items))
	return items, nil
}

func parseRecord(record []string) (model.Item, error) {
	if len(record) != fieldCount {
		return model.Item{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(record))
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return model.Item{}, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return model.Item{}, fmt.Errorf("invalid quantity %q: %w", record[3], err)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return model.Item{}, fmt.Errorf("invalid amount %q: %w", record[4], err)
	}

	criticality, err := model.ParseCriticality(record[5])
	if err != nil {
		return model.Item{}, err
	}

	item := model.Item{
		ID:          id,
		Name:        strings.TrimSpace(record[1]),
		Unit:        strings.TrimSpace(record[2]),
		Quantity:    quantity,
		Amount:      amount,
		Criticality: criticality,
	}
	if err := item.Validate(); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// looksLikeHeader reports whether a row reads like column labels rather than
// data: right width, but a non-numeric id column.
func looksLikeHeader(record []string) bool {
	if len(record) != fieldCount {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[0]))
	return err != nil
}
