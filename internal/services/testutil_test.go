package services

import (
	"context"

	"payledger/internal/logging"
	"payledger/internal/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeUserRepo is an in-memory users.Repository that records Append calls.
type fakeUserRepo struct {
	accounts []models.UserAccount
	appends  []models.UserAccount
	loadErr  error
}

func (f *fakeUserRepo) Append(_ context.Context, acc *models.UserAccount) error {
	f.appends = append(f.appends, *acc)
	f.accounts = append(f.accounts, *acc)
	return nil
}

func (f *fakeUserRepo) LoadAll(context.Context) ([]models.UserAccount, error) {
	return f.accounts, f.loadErr
}

func (f *fakeUserRepo) LoadIDs(context.Context) (map[string]struct{}, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	ids := make(map[string]struct{}, len(f.accounts))
	for _, acc := range f.accounts {
		ids[acc.ID] = struct{}{}
	}
	return ids, nil
}

// fakeRecordRepo is an in-memory records.Repository that records Append calls.
type fakeRecordRepo struct {
	records []models.EmployeeRecord
	appends []models.EmployeeRecord
	loadErr error
}

func (f *fakeRecordRepo) Append(_ context.Context, rec *models.EmployeeRecord) error {
	f.appends = append(f.appends, *rec)
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRecordRepo) LoadIDs(context.Context) (map[string]struct{}, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	ids := make(map[string]struct{}, len(f.records))
	for _, rec := range f.records {
		if rec.ID != "" {
			ids[rec.ID] = struct{}{}
		}
	}
	return ids, nil
}

func (f *fakeRecordRepo) LoadAll(_ context.Context, fromDate string) ([]models.EmployeeRecord, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	var result []models.EmployeeRecord
	for _, rec := range f.records {
		if fromDate != "" && rec.FromDate != fromDate {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}
