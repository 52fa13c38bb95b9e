package repository

import (
	"encoding/json"
	"fmt"
)

// Cross-entity references are stored as JSON arrays of canonical string
// ids in a single column; encoding and decoding happen only here, at the
// store boundary.

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode id list: %w", err)
	}
	return string(data), nil
}

func decodeIDs(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode id list: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
