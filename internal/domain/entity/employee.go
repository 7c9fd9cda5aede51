package entity

import (
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
)

// Employee is a registry record. ID is the stable surrogate key; Name is
// a mutable display attribute, unique case-insensitively.
type Employee struct {
	ID                int64                 `json:"id" db:"id"`
	Name              string                `json:"name" db:"name"`
	WorkerCategory    domain.WorkerCategory `json:"workerCategory" db:"worker_category"`
	WeeklyDayOff      string                `json:"weeklyDayOff" db:"weekly_day_off"`         // lowercase weekday name or ""
	ShiftStart        string                `json:"shiftStart" db:"shift_start"`              // HH:MM, 24h
	SundayCategory    domain.SundayCategory `json:"sundayCategory" db:"sunday_category"`      // empty = not enrolled
	FirstWorkedSunday string                `json:"firstWorkedSunday" db:"first_worked_sunday"` // YYYY-MM-DD or ""
	CreatedAt         time.Time             `json:"createdAt" db:"created_at"`
}

// ShiftBucket returns the morning/afternoon bucket of the employee's
// shift start.
func (e *Employee) ShiftBucket() domain.ShiftBucket {
	return domain.BucketOf(e.ShiftStart)
}
