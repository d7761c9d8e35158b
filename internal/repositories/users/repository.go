// Package users implements the append-only user account store.
//
// Accounts are persisted one per line as id|password|role. Lines with fewer
// than three fields are ignored on read. The store performs no uniqueness
// check itself; rejecting duplicate ids before append is the caller's job.
package users

import (
	"context"

	"payledger/internal/models"
)

// Repository is the user account store.
type Repository interface {
	Append(ctx context.Context, acc *models.UserAccount) error
	LoadAll(ctx context.Context) ([]models.UserAccount, error)
	LoadIDs(ctx context.Context) (map[string]struct{}, error)
}
