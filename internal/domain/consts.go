package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used everywhere. Dates carry no
// time-of-day or timezone information.
const DateLayout = "2006-01-02"

// WorkerCategory classifies how an employee is contracted.
type WorkerCategory string

const (
	CategoryInHouse    WorkerCategory = "in_house"
	CategoryOutsourced WorkerCategory = "outsourced"
)

// CategoryLabels maps worker categories to spreadsheet subheadings.
var CategoryLabels = map[WorkerCategory]string{
	CategoryInHouse:    "IN-HOUSE",
	CategoryOutsourced: "OUTSOURCED",
}

// SundayCategory is the role an employee is enrolled under for the
// Sunday rotation. Empty means not enrolled.
type SundayCategory string

const (
	SundayPacker     SundayCategory = "packer"
	SundayCashier    SundayCategory = "cashier"
	SundaySupervisor SundayCategory = "supervisor"
)

// SundayCategoryLabels maps rotation categories to their sheet titles.
var SundayCategoryLabels = map[SundayCategory]string{
	SundayPacker:     "Packer",
	SundayCashier:    "Cashier",
	SundaySupervisor: "Supervisor",
}

// Marks written into rotation plans and the monthly Sunday sheet.
const (
	MarkWork = "TB"
	MarkRest = "F"
)

// ShiftBucket is the coarse morning/afternoon classification of a shift
// start time. Assignments are keyed by it.
type ShiftBucket string

const (
	ShiftMorning   ShiftBucket = "morning"
	ShiftAfternoon ShiftBucket = "afternoon"
)

// BucketOf classifies an HH:MM shift start: hour < 12 is morning,
// everything else afternoon. Every view and export goes through this so
// they can never disagree.
func BucketOf(shiftStart string) ShiftBucket {
	hh, _, _ := strings.Cut(shiftStart, ":")
	hour, err := strconv.Atoi(hh)
	if err == nil && hour < 12 {
		return ShiftMorning
	}
	return ShiftAfternoon
}

// Weekdays in the order the day-off views present them.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekdayName returns the lowercase weekday name used by the registry's
// weeklyDayOff field.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}
