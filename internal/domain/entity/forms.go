package entity

import "github.com/condor-ops/pos-roster/internal/domain"

// EmployeeForm is the structured add/edit request for a registry
// record. It is validated atomically; a failing form leaves the
// registry untouched.
type EmployeeForm struct {
	Name              string                `json:"name" validate:"required"`
	WorkerCategory    domain.WorkerCategory `json:"workerCategory" validate:"omitempty,oneof=in_house outsourced"`
	WeeklyDayOff      string                `json:"weeklyDayOff" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	ShiftStart        string                `json:"shiftStart" validate:"required,len=5,datetime=15:04"`
	SundayCategory    domain.SundayCategory `json:"sundayCategory" validate:"omitempty,oneof=packer cashier supervisor"`
	FirstWorkedSunday string                `json:"firstWorkedSunday" validate:"omitempty,datetime=2006-01-02"`
}

// SundayEnrollmentForm is the dedicated Sunday-rotation enrollment
// request. Unlike EmployeeForm, category and anchor are mandatory here.
type SundayEnrollmentForm struct {
	Name              string                `json:"name" validate:"required"`
	SundayCategory    domain.SundayCategory `json:"sundayCategory" validate:"required,oneof=packer cashier supervisor"`
	FirstWorkedSunday string                `json:"firstWorkedSunday" validate:"required,datetime=2006-01-02"`
}

// AssignmentForm is the assign request for a terminal slot.
type AssignmentForm struct {
	Date     string             `json:"date" validate:"required,datetime=2006-01-02"`
	Terminal string             `json:"terminal" validate:"required"`
	Employee string             `json:"employee" validate:"required"`
	Shift    domain.ShiftBucket `json:"shift" validate:"required,oneof=morning afternoon"`
}
