package service

import (
	"context"
	"testing"
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportSundayRotation(t *testing.T) {
	services, dm := setupTestServices(t)

	createEmployee(t, dm, &entity.Employee{
		Name:              "Ursula",
		SundayCategory:    domain.SundayPacker,
		FirstWorkedSunday: "2025-10-05",
	})

	buf, filename, err := services.Export.SundayRotation(domain.SundayPacker, time.October, 2025)
	require.NoError(t, err)
	assert.Equal(t, "sundays_packer_10-2025.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Sundays"
	assert.Contains(t, f.GetSheetList(), sheet)

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "SUNDAY ROSTER - PACKER - 10/2025", title)

	header, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	day1, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", day1)

	name, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Ursula", name)

	// October 5th is column F (A + 5). Work mark there, rest mark on
	// the 26th (column AA), blank on a weekday.
	work, err := f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, domain.MarkWork, work)

	rest, err := f.GetCellValue(sheet, "AA3")
	require.NoError(t, err)
	assert.Equal(t, domain.MarkRest, rest)

	weekday, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Empty(t, weekday)
}

func TestExportDayOffWeek(t *testing.T) {
	services, dm := setupTestServices(t)

	createEmployee(t, dm, &entity.Employee{Name: "Alda", ShiftStart: "07:00", WeeklyDayOff: "monday"})
	createEmployee(t, dm, &entity.Employee{Name: "Bia", ShiftStart: "08:00", WeeklyDayOff: "monday"})

	buf, filename, err := services.Export.DayOffWeek(domain.CategoryInHouse, domain.ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, "dayoffs_in_house_morning.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "IN-HOUSE MORNING"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	monday, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "MONDAY", monday)

	first, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Alda (07:00)", first)

	second, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Bia (08:00)", second)

	// Tuesday has nobody off.
	tuesday, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "No one", tuesday)
}

func TestExportDayOffWeekAll(t *testing.T) {
	services, dm := setupTestServices(t)
	createEmployee(t, dm, &entity.Employee{Name: "Alda", ShiftStart: "07:00", WeeklyDayOff: "monday"})

	buf, filename, err := services.Export.DayOffWeekAll()
	require.NoError(t, err)
	assert.Equal(t, "dayoffs_all.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"IN-HOUSE MORNING",
		"IN-HOUSE AFTERNOON",
		"OUTSOURCED MORNING",
		"OUTSOURCED AFTERNOON",
	}, f.GetSheetList())
}

func TestExportDailyAssignments(t *testing.T) {
	ctx := context.Background()
	services, dm := setupTestServices(t)

	createEmployee(t, dm, &entity.Employee{Name: "Joana", ShiftStart: "07:00", WeeklyDayOff: "tuesday"})
	createEmployee(t, dm, &entity.Employee{
		Name: "Kleber", ShiftStart: "08:00",
		WorkerCategory: domain.CategoryOutsourced,
	})
	createEmployee(t, dm, &entity.Employee{Name: "Lia", ShiftStart: "13:00"})

	for _, a := range []entity.AssignmentForm{
		{Date: "2025-10-20", Terminal: "1", Employee: "Joana", Shift: domain.ShiftMorning},
		{Date: "2025-10-20", Terminal: "2", Employee: "Kleber", Shift: domain.ShiftMorning},
		{Date: "2025-10-20", Terminal: "3", Employee: "Lia", Shift: domain.ShiftAfternoon},
	} {
		_, err := services.Roster.Assign(ctx, a)
		require.NoError(t, err)
	}

	buf, filename, err := services.Export.DailyAssignments("2025-10-20", domain.ShiftMorning)
	require.NoError(t, err)
	assert.Equal(t, "roster_morning_2025-10-20.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Morning"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "7:00 - 11:00", title)

	// Row 3 is the in-house subheading, row 4 Joana, row 5 the
	// outsourced subheading, row 6 Kleber. Lia works the other shift
	// and stays off this sheet.
	subhead, err := f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "IN-HOUSE", subhead)

	name, err := f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	assert.Equal(t, "Joana", name)

	dayOff, err := f.GetCellValue(sheet, "E4")
	require.NoError(t, err)
	assert.Equal(t, "TUESDAY", dayOff)

	subhead, err = f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "OUTSOURCED", subhead)

	name, err = f.GetCellValue(sheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "Kleber", name)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotContains(t, row, "Lia")
	}
}

func TestExportDailyAssignmentsBadDate(t *testing.T) {
	services, _ := setupTestServices(t)

	_, _, err := services.Export.DailyAssignments("today", domain.ShiftMorning)
	require.Error(t, err)
}
