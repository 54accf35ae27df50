package csvutil

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Row is a parsed CSV record keyed by header name
type Row map[string]string

// ValidationResult reports whether parsed CSV data is importable and, if not,
// one descriptive error per problem found.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Parse reads CSV text with a header row into a slice of rows. Short records
// are padded with empty strings so every row exposes every header.
func Parse(csvText string) ([]Row, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.TrimLeadingSpace = true
	// Rows may have fewer fields than the header; pad rather than fail
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Validate checks parsed rows against a set of required fields: every
// required column must be present in the header, and no row may leave a
// required field empty. Errors accumulate; the caller gets all of them.
func Validate(rows []Row, requiredFields []string) ValidationResult {
	var errs []string

	if len(rows) == 0 {
		errs = append(errs, "el archivo CSV no contiene datos")
		return ValidationResult{IsValid: false, Errors: errs}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := rows[0][field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("faltan campos requeridos: %s", strings.Join(missing, ", ")))
	}

	for i, row := range rows {
		for _, field := range requiredFields {
			if value, ok := row[field]; ok && value == "" {
				errs = append(errs, fmt.Sprintf("fila %d: el campo '%s' está vacío", i+1, field))
			}
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
