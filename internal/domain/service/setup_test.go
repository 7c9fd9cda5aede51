package service

import (
	"testing"

	"github.com/condor-ops/pos-roster/internal/database"
	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestServices(t *testing.T) (*Instance, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	return NewInstance(dm, zap.NewNop()), dm
}

func createEmployee(t *testing.T, dm contract.DataManager, e *entity.Employee) *entity.Employee {
	t.Helper()

	if e.WorkerCategory == "" {
		e.WorkerCategory = domain.CategoryInHouse
	}
	if e.ShiftStart == "" {
		e.ShiftStart = "08:00"
	}
	err := dm.Employee().Create(e)
	require.NoError(t, err)
	return e
}
