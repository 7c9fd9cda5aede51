package entity

import (
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
)

// Assignment binds an employee to a point-of-sale terminal for one
// date and shift. At most one assignment exists per (date, terminal,
// shift) triple. EmployeeName is resolved from the registry on read so
// renames can never leave a stale reference; WorkerCategory is a
// snapshot taken at assignment time and is deliberately not updated
// when the employee's category later changes.
type Assignment struct {
	ID             int64                 `json:"id" db:"id"`
	Date           string                `json:"date" db:"date"` // YYYY-MM-DD
	Terminal       string                `json:"terminal" db:"terminal"`
	EmployeeID     int64                 `json:"employeeId" db:"employee_id"`
	EmployeeName   string                `json:"employee" db:"employee_name"`
	WorkerCategory domain.WorkerCategory `json:"workerCategory" db:"worker_category"`
	Shift          domain.ShiftBucket    `json:"shift" db:"shift"`
	CreatedAt      time.Time             `json:"createdAt" db:"created_at"`
}
