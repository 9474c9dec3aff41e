package jmh

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	apperrors "benchreport/internal/errors"

	"github.com/spf13/afero"
)

// Load reads and parses the results file at path.
func Load(fs afero.Fs, path string) ([]Record, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &apperrors.MissingInputError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	records, err := Parse(data)
	if err != nil {
		var malformed *apperrors.MalformedInputError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return records, nil
}

// Parse decodes a JSON list of records.
func Parse(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &apperrors.MalformedInputError{Err: fmt.Errorf("expected a JSON list of benchmark records")}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, &apperrors.MalformedInputError{Err: err}
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &apperrors.MalformedInputError{Err: fmt.Errorf("record %d is not an object", i)}
		}
		var rec Record
		if err := json.Unmarshal(item, &rec); err != nil {
			return nil, &apperrors.MalformedInputError{Err: fmt.Errorf("record %d: %w", i, err)}
		}
		rec.normalize()
		records = append(records, rec)
	}
	return records, nil
}
