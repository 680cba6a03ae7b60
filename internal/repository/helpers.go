package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// marshalJSON encodes a value as a JSON string for SQLite storage.
// Nil slices encode as "[]" so columns never hold SQL NULL.
func marshalJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json column: %w", err)
	}
	s := string(data)
	if s == "null" {
		s = "[]"
	}
	return s, nil
}

// unmarshalJSON decodes a JSON column into dst. Empty strings decode
// to the zero value.
func unmarshalJSON(s string, dst interface{}) error {
	if s == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}

// parseTime parses an RFC3339 timestamp from SQLite. Falls back to the
// zero time on parse failure rather than failing the whole scan.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
