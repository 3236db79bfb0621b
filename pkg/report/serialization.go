// Package report - Serialization helpers for BadgerDB.
package report

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// serializeReport converts a Report to gob bytes for BadgerDB storage.
// gob preserves Go types (time.Time, nested structs) without tag churn.
func serializeReport(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return buf.Bytes(), nil
}

// deserializeReport converts gob bytes back to a Report.
func deserializeReport(data []byte) (*Report, error) {
	var r Report
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &r, nil
}
