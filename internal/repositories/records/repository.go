// Package records implements the append-only employee pay record store.
//
// Records are persisted one per line in a pipe-delimited text file. Two line
// shapes are accepted on read for backward compatibility:
//
//	v1: from|to|name|hours|rate|taxRate
//	v2: id|from|to|name|hours|rate|taxRate[|ignored...]
//
// Writes always emit v2 when an id is present, v1 otherwise.
package records

import (
	"context"

	"payledger/internal/models"
)

// Repository is the employee pay record store.
//
// Contract:
//   - Append: serialize one record and append it to the backing file.
//   - LoadIDs: collect the ids of all v2 lines (v1 lines carry no id).
//   - LoadAll: parse every line into a record, optionally filtered by
//     fromDate; malformed lines are skipped, a missing file is an empty store.
type Repository interface {
	Append(ctx context.Context, rec *models.EmployeeRecord) error
	LoadIDs(ctx context.Context) (map[string]struct{}, error)
	LoadAll(ctx context.Context, fromDate string) ([]models.EmployeeRecord, error)
}
