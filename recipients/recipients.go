// Package recipients reads the recipients CSV and validates phone numbers.
package recipients

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Recipient is one message target. Name is empty when the CSV carries only
// phone numbers.
type Recipient struct {
	Name   string
	Number string
}

// Label formats the recipient for log lines.
func (r Recipient) Label() string {
	if r.Name == "" {
		return r.Number
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Number)
}

// Read parses a headerless CSV of recipients. With hasNames, every row must
// hold exactly two fields (name, number); otherwise exactly one (number).
// A row with the wrong field count aborts the whole read. Fields are
// whitespace-trimmed; numbers are returned raw, not yet normalized.
func Read(path string, hasNames bool) ([]Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV from %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 1
	if hasNames {
		r.FieldsPerRecord = 2
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV record: %w", err)
	}

	recipients := make([]Recipient, 0, len(rows))
	for _, row := range rows {
		var rec Recipient
		if hasNames {
			rec.Name = strings.TrimSpace(row[0])
			rec.Number = strings.TrimSpace(row[1])
		} else {
			rec.Number = strings.TrimSpace(row[0])
		}
		recipients = append(recipients, rec)
	}

	return recipients, nil
}
