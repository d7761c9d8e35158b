package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"payledger/internal/common"
	"payledger/internal/logging"
	"payledger/internal/models"
	"payledger/internal/repositories/records"
)

// EntryService defines the admin-side record entry flow.
//
// Contract:
//   - AddRecord: assign an id when none was supplied, reject duplicate ids
//     before any write, then append. Returns the record as stored.
//   - ExistingIDs: ids already present in the store, for prompt-time
//     validation.
type EntryService interface {
	AddRecord(ctx context.Context, rec *models.EmployeeRecord) (*models.EmployeeRecord, error)
	ExistingIDs(ctx context.Context) (map[string]struct{}, error)
}

type entryService struct {
	records records.Repository
	logger  logging.Logger
}

// NewEntryService constructs an EntryService over the given record store.
func NewEntryService(repo records.Repository, logger logging.Logger) EntryService {
	return &entryService{
		records: repo,
		logger:  logger.With("component", "entry"),
	}
}

func (e *entryService) AddRecord(ctx context.Context, rec *models.EmployeeRecord) (*models.EmployeeRecord, error) {
	stored := *rec
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	existing, err := e.records.LoadIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load record ids: %w", err)
	}
	if _, ok := existing[stored.ID]; ok {
		return nil, common.ErrDuplicateID
	}

	stored.FromDate = records.NormalizeDate(stored.FromDate)
	stored.ToDate = records.NormalizeDate(stored.ToDate)

	if err := e.records.Append(ctx, &stored); err != nil {
		return nil, fmt.Errorf("append record: %w", err)
	}

	e.logger.Info(ctx, "record stored", "id", stored.ID, "name", stored.Name, "from", stored.FromDate)
	return &stored, nil
}

func (e *entryService) ExistingIDs(ctx context.Context) (map[string]struct{}, error) {
	return e.records.LoadIDs(ctx)
}
