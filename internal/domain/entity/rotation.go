package entity

import "github.com/condor-ops/pos-roster/internal/domain"

// RotationPlan is one month of the Sunday rotation for one category:
// which days of the month are Sundays, and who works or rests on each.
// It is derived on demand and never stored.
type RotationPlan struct {
	Category domain.SundayCategory `json:"category"`
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Sundays  []int                 `json:"sundays"` // days of month
	Rows     []RotationRow         `json:"rows"`
}

// RotationRow maps one enrolled employee's Sundays of the month to a
// work or rest mark.
type RotationRow struct {
	Name              string         `json:"name"`
	FirstWorkedSunday string         `json:"firstWorkedSunday"`
	Days              map[int]string `json:"days"` // day of month → work/rest mark
}

// DayOffGroup lists the employees of one category and shift bucket who
// rest on the given weekday, in registry order.
type DayOffGroup struct {
	Weekday   string                `json:"weekday"`
	Category  domain.WorkerCategory `json:"category"`
	Shift     domain.ShiftBucket    `json:"shift"`
	Employees []*Employee           `json:"employees"`
}
