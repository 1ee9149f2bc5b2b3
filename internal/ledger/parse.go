package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerflow-dev/ledgerflow/internal/model"
)

const numFields = 5

// Source files are positional comma-separated text, not quoted CSV: every
// line splits into date, account, description, debit, credit. Lines with
// fewer fields yield empty strings for the missing positions. There is no
// header row; the first line is data.
const (
	colDate    = 0
	colAccount = 1
	colDebit   = 3
	colCredit  = 4
)

// dateLayouts are tried in order when extracting a year from an entry date.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// ParseEntries splits file content into ledger entries. Malformed numeric
// fields default to zero unless strict is set, in which case they are
// reported as errors. Empty content yields no entries.
func ParseEntries(content string, strict bool) ([]model.Entry, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}

	lines := strings.Split(trimmed, "\n")
	entries := make([]model.Entry, 0, len(lines))
	for i, line := range lines {
		fields := splitRow(strings.TrimRight(line, "\r"))

		debit, err := parseAmount(fields[colDebit], strict)
		if err != nil {
			return nil, fmt.Errorf("row %d: debit: %w", i+1, err)
		}
		credit, err := parseAmount(fields[colCredit], strict)
		if err != nil {
			return nil, fmt.Errorf("row %d: credit: %w", i+1, err)
		}

		entries = append(entries, model.Entry{
			Date:    fields[colDate],
			Account: fields[colAccount],
			Debit:   debit,
			Credit:  credit,
		})
	}
	return entries, nil
}

// splitRow splits a line on commas and pads to the full field count so
// short rows read as empty values.
func splitRow(line string) []string {
	fields := strings.Split(line, ",")
	for len(fields) < numFields {
		fields = append(fields, "")
	}
	return fields
}

// parseAmount parses a debit or credit field. Empty and malformed values
// are zero in lenient mode.
func parseAmount(s string, strict bool) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if strict {
			return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
		}
		return decimal.Zero, nil
	}
	return d, nil
}

// ParseYear extracts the calendar year from an entry date, trying each known
// layout. Returns false when no layout matches; callers skip such rows.
func ParseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
