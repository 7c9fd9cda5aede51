package database

import (
	"testing"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, repo contract.EmployeeRepo, name string) *entity.Employee {
	t.Helper()

	employee := &entity.Employee{
		Name:           name,
		WorkerCategory: domain.CategoryInHouse,
		ShiftStart:     "08:00",
	}
	require.NoError(t, repo.Create(employee))
	return employee
}

func TestAssignmentRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	employeeRepo := newEmployeeRepo(db.conn)
	assignmentRepo := newAssignmentRepo(db.conn)

	employee := createTestEmployee(t, employeeRepo, "Maria")

	t.Run("should create assignment successfully", func(t *testing.T) {
		assignment := &entity.Assignment{
			Date:           "2025-10-06",
			Terminal:       "101",
			EmployeeID:     employee.ID,
			WorkerCategory: employee.WorkerCategory,
			Shift:          domain.ShiftMorning,
		}

		err := assignmentRepo.Create(assignment)

		require.NoError(t, err)
		assert.NotZero(t, assignment.ID)
	})

	t.Run("should reject duplicate date terminal shift triple", func(t *testing.T) {
		assignment := &entity.Assignment{
			Date:           "2025-10-06",
			Terminal:       "101",
			EmployeeID:     employee.ID,
			WorkerCategory: employee.WorkerCategory,
			Shift:          domain.ShiftMorning,
		}

		err := assignmentRepo.Create(assignment)

		assert.Error(t, err)
	})

	t.Run("should allow same terminal on the other shift", func(t *testing.T) {
		assignment := &entity.Assignment{
			Date:           "2025-10-06",
			Terminal:       "101",
			EmployeeID:     employee.ID,
			WorkerCategory: employee.WorkerCategory,
			Shift:          domain.ShiftAfternoon,
		}

		err := assignmentRepo.Create(assignment)

		require.NoError(t, err)
	})

	t.Run("should allow same employee on another terminal", func(t *testing.T) {
		assignment := &entity.Assignment{
			Date:           "2025-10-06",
			Terminal:       "102",
			EmployeeID:     employee.ID,
			WorkerCategory: employee.WorkerCategory,
			Shift:          domain.ShiftMorning,
		}

		err := assignmentRepo.Create(assignment)

		require.NoError(t, err)
	})
}

func TestAssignmentRepo_GetByKey(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	employeeRepo := newEmployeeRepo(db.conn)
	assignmentRepo := newAssignmentRepo(db.conn)

	employee := createTestEmployee(t, employeeRepo, "Joana")

	created := &entity.Assignment{
		Date:           "2025-10-06",
		Terminal:       "105",
		EmployeeID:     employee.ID,
		WorkerCategory: employee.WorkerCategory,
		Shift:          domain.ShiftMorning,
	}
	require.NoError(t, assignmentRepo.Create(created))

	t.Run("should return assignment with employee name resolved", func(t *testing.T) {
		assignment, err := assignmentRepo.GetByKey("2025-10-06", "105", domain.ShiftMorning)

		require.NoError(t, err)
		require.NotNil(t, assignment)
		assert.Equal(t, created.ID, assignment.ID)
		assert.Equal(t, "Joana", assignment.EmployeeName)
		assert.Equal(t, domain.CategoryInHouse, assignment.WorkerCategory)
	})

	t.Run("should return nil for a free slot", func(t *testing.T) {
		assignment, err := assignmentRepo.GetByKey("2025-10-06", "105", domain.ShiftAfternoon)

		require.NoError(t, err)
		assert.Nil(t, assignment)
	})
}

func TestAssignmentRepo_ListByDate(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	employeeRepo := newEmployeeRepo(db.conn)
	assignmentRepo := newAssignmentRepo(db.conn)

	employee := createTestEmployee(t, employeeRepo, "Maria")

	// Insertion order deliberately scrambled; "9" sorts after "101" and
	// "23" under string comparison.
	for _, terminal := range []string{"23", "9", "101"} {
		require.NoError(t, assignmentRepo.Create(&entity.Assignment{
			Date:           "2025-10-06",
			Terminal:       terminal,
			EmployeeID:     employee.ID,
			WorkerCategory: employee.WorkerCategory,
			Shift:          domain.ShiftMorning,
		}))
	}
	require.NoError(t, assignmentRepo.Create(&entity.Assignment{
		Date:           "2025-10-07",
		Terminal:       "101",
		EmployeeID:     employee.ID,
		WorkerCategory: employee.WorkerCategory,
		Shift:          domain.ShiftMorning,
	}))

	t.Run("should filter by date and order terminals lexicographically", func(t *testing.T) {
		assignments, err := assignmentRepo.ListByDate("2025-10-06")

		require.NoError(t, err)
		require.Len(t, assignments, 3)

		var terminals []string
		for _, a := range assignments {
			terminals = append(terminals, a.Terminal)
		}
		assert.Equal(t, []string{"101", "23", "9"}, terminals)
	})

	t.Run("should return nothing for an empty date", func(t *testing.T) {
		assignments, err := assignmentRepo.ListByDate("2025-10-08")

		require.NoError(t, err)
		assert.Empty(t, assignments)
	})
}

func TestAssignmentRepo_DeleteByKey(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	employeeRepo := newEmployeeRepo(db.conn)
	assignmentRepo := newAssignmentRepo(db.conn)

	employee := createTestEmployee(t, employeeRepo, "Maria")

	require.NoError(t, assignmentRepo.Create(&entity.Assignment{
		Date:           "2025-10-06",
		Terminal:       "101",
		EmployeeID:     employee.ID,
		WorkerCategory: employee.WorkerCategory,
		Shift:          domain.ShiftMorning,
	}))

	t.Run("should delete the matching assignment", func(t *testing.T) {
		err := assignmentRepo.DeleteByKey("2025-10-06", "101", domain.ShiftMorning)
		require.NoError(t, err)

		assignment, err := assignmentRepo.GetByKey("2025-10-06", "101", domain.ShiftMorning)
		require.NoError(t, err)
		assert.Nil(t, assignment)
	})

	t.Run("should be a no-op when absent", func(t *testing.T) {
		err := assignmentRepo.DeleteByKey("2025-10-06", "101", domain.ShiftMorning)
		assert.NoError(t, err)
	})
}
