package contract

import (
	"bytes"
	"context"
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
)

// RegistryService manages the employee registry
type RegistryService interface {
	// Upsert replaces the record whose name matches case-insensitively,
	// or appends a new one.
	Upsert(ctx context.Context, form entity.EmployeeForm) (*entity.Employee, error)
	// Rename updates all fields of the employee currently named oldName,
	// including the name itself.
	Rename(ctx context.Context, oldName string, form entity.EmployeeForm) (*entity.Employee, error)
	// Remove deletes by exact name and cascades to the ledger; a miss is
	// a no-op.
	Remove(name string) error
	List() ([]*entity.Employee, error)
	// EnrollSunday sets the rotation category and anchor of an existing
	// employee, or registers a minimal record for an unknown name.
	EnrollSunday(ctx context.Context, form entity.SundayEnrollmentForm) (*entity.Employee, error)
}

// RosterService manages the terminal assignment ledger
type RosterService interface {
	Assign(ctx context.Context, form entity.AssignmentForm) (*entity.Assignment, error)
	Unassign(date, terminal string, shift domain.ShiftBucket) error
	ListForDate(date string) ([]*entity.Assignment, error)
	// AvailableEmployees returns employees whose shift bucket matches and
	// whose weekly day off does not fall on the given date.
	AvailableEmployees(date string, shift domain.ShiftBucket) ([]*entity.Employee, error)
}

// RotationService derives Sunday rotation plans for the planner view
type RotationService interface {
	MonthPlan(category domain.SundayCategory, month time.Month, year int) (*entity.RotationPlan, error)
}

// DayOffService groups the registry by fixed weekly day off
type DayOffService interface {
	WeekOverview() ([]*entity.DayOffGroup, error)
}

// ExportService renders schedules into spreadsheet workbooks. Each call
// returns the workbook contents and a suggested filename.
type ExportService interface {
	SundayRotation(category domain.SundayCategory, month time.Month, year int) (*bytes.Buffer, string, error)
	DayOffWeek(category domain.WorkerCategory, shift domain.ShiftBucket) (*bytes.Buffer, string, error)
	DayOffWeekAll() (*bytes.Buffer, string, error)
	DailyAssignments(date string, shift domain.ShiftBucket) (*bytes.Buffer, string, error)
}
