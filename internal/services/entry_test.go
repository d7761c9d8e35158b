package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payledger/internal/common"
	"payledger/internal/models"
)

func TestAddRecord_StoresAndNormalizes(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewEntryService(repo, nopLogger{})

	rec := &models.EmployeeRecord{
		ID:       "e1",
		FromDate: "1/1/2024",
		ToDate:   "1/15/2024",
		Name:     "Alice",
		Hours:    40,
		Rate:     20,
		TaxRate:  0.2,
	}
	stored, err := svc.AddRecord(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, "e1", stored.ID)
	assert.Equal(t, "01/01/2024", stored.FromDate)
	assert.Equal(t, "01/15/2024", stored.ToDate)
	require.Len(t, repo.appends, 1)
}

func TestAddRecord_GeneratesIDWhenBlank(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewEntryService(repo, nopLogger{})

	stored, err := svc.AddRecord(context.Background(), &models.EmployeeRecord{
		FromDate: "01/01/2024", ToDate: "01/15/2024", Name: "Bob", Hours: 1, Rate: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err)
}

func TestAddRecord_DuplicateIDRejectedBeforeAppend(t *testing.T) {
	repo := &fakeRecordRepo{records: []models.EmployeeRecord{
		{ID: "e1", FromDate: "01/01/2024", ToDate: "01/15/2024", Name: "Alice", Hours: 1, Rate: 1},
	}}
	svc := NewEntryService(repo, nopLogger{})

	_, err := svc.AddRecord(context.Background(), &models.EmployeeRecord{
		ID: "e1", FromDate: "02/01/2024", ToDate: "02/15/2024", Name: "Eve", Hours: 1, Rate: 1,
	})
	require.ErrorIs(t, err, common.ErrDuplicateID)
	assert.Empty(t, repo.appends)
}
