package zainetto

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// this file contains functions to read the raw transaction feed.
// Each asset class lives in its own sheet, exported as a CSV file with the
// columns: date, ticker, name, action, quantity, price, amount.
// Trailing columns may be omitted; a header row is detected and skipped.

// ImportRows reads raw rows from a CSV stream. It only fails on structural
// CSV errors: the content of each field is deliberately left untouched, since
// all the fail-soft parsing lives in Normalize.
func ImportRows(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // sheets are ragged, Normalize copes
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse raw rows: %w", err)
	}

	var rows []RawRow
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		row := RawRow{Date: field(record, 0), Ticker: field(record, 1), Name: field(record, 2),
			Action: field(record, 3), Quantity: field(record, 4), Price: field(record, 5), Amount: field(record, 6)}
		if row.Name == "" {
			// Sheets without a name column still satisfy the "blank name
			// means skip" rule through the ticker.
			row.Name = row.Ticker
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// isHeader reports whether the first record is a label row rather than data.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := ParseDate(record[0])
	return err != nil
}

// field returns the i-th field of a record, or "" when the record is shorter.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
