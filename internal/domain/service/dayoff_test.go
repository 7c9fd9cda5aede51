package service

import (
	"testing"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOffWeekOverview(t *testing.T) {
	services, dm := setupTestServices(t)

	createEmployee(t, dm, &entity.Employee{Name: "Alda", ShiftStart: "07:00", WeeklyDayOff: "monday"})
	createEmployee(t, dm, &entity.Employee{Name: "Bia", ShiftStart: "08:00", WeeklyDayOff: "monday"})
	createEmployee(t, dm, &entity.Employee{Name: "Caio", ShiftStart: "13:00", WeeklyDayOff: "monday"})
	createEmployee(t, dm, &entity.Employee{
		Name: "Dirce", ShiftStart: "07:00", WeeklyDayOff: "friday",
		WorkerCategory: domain.CategoryOutsourced,
	})
	createEmployee(t, dm, &entity.Employee{Name: "Enzo", ShiftStart: "07:00"})

	groups, err := services.DayOff.WeekOverview()
	require.NoError(t, err)

	// Seven weekdays for each of the four category and shift buckets.
	require.Len(t, groups, 28)

	// Bucket-major order: the first seven groups are in-house morning,
	// monday through sunday.
	assert.Equal(t, "monday", groups[0].Weekday)
	assert.Equal(t, domain.CategoryInHouse, groups[0].Category)
	assert.Equal(t, domain.ShiftMorning, groups[0].Shift)
	assert.Equal(t, "sunday", groups[6].Weekday)
	assert.Equal(t, domain.ShiftAfternoon, groups[7].Shift)

	require.Len(t, groups[0].Employees, 2)
	assert.Equal(t, "Alda", groups[0].Employees[0].Name)
	assert.Equal(t, "Bia", groups[0].Employees[1].Name)

	// Caio starts at 13:00 so he lands in the in-house afternoon bucket.
	assert.Len(t, groups[7].Employees, 1)
	assert.Equal(t, "Caio", groups[7].Employees[0].Name)

	// Dirce is outsourced morning, friday.
	assert.Len(t, groups[18].Employees, 1)
	assert.Equal(t, "Dirce", groups[18].Employees[0].Name)

	// Enzo has no weekly day off and appears nowhere.
	total := 0
	for _, g := range groups {
		for _, e := range g.Employees {
			assert.NotEqual(t, "Enzo", e.Name)
		}
		total += len(g.Employees)
	}
	assert.Equal(t, 4, total)
}

func TestDayOffWeekOverviewEmptyRegistry(t *testing.T) {
	services, _ := setupTestServices(t)

	groups, err := services.DayOff.WeekOverview()
	require.NoError(t, err)
	require.Len(t, groups, 28)
	for _, g := range groups {
		assert.Empty(t, g.Employees)
	}
}
