package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Fill colors carried over from the paper forms the spreadsheets
// replaced.
const (
	restFill    = "#ECECEC"
	workFill    = "#DFF2E6"
	headerFill  = "#1E2A78"
	subheadFill = "#EFEFEF"
	columnFill  = "#CCCCCC"
)

type exportService struct {
	dm       contract.DataManager
	rotation contract.RotationService
	dayOff   contract.DayOffService
	logger   *zap.Logger
}

func newExport(dm contract.DataManager, rotation contract.RotationService, dayOff contract.DayOffService, logger *zap.Logger) *exportService {
	return &exportService{
		dm:       dm,
		rotation: rotation,
		dayOff:   dayOff,
		logger:   logger.Named("export"),
	}
}

// SundayRotation renders one month of the Sunday rotation for one
// category: header Employee, 1..31, one row per enrolled employee, each
// Sunday cell marked TB (work) or F (rest), other days blank.
func (s *exportService) SundayRotation(category domain.SundayCategory, month time.Month, year int) (*bytes.Buffer, string, error) {
	plan, err := s.rotation.MonthPlan(category, month, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sundays"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "AF", 4)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	baseStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	workStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{workFill}, Pattern: 1},
	})
	restStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{restFill}, Pattern: 1},
	})

	title := fmt.Sprintf("SUNDAY ROSTER - %s - %d/%d", strings.ToUpper(domain.SundayCategoryLabels[category]), month, year)
	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "AG1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	f.SetCellValue(sheet, "A2", "Employee")
	for d := 1; d <= 31; d++ {
		f.SetCellValue(sheet, cellName(1+d, 2), d)
	}
	f.SetCellStyle(sheet, "A2", cellName(32, 2), headerStyle)

	row := 3
	for _, pr := range plan.Rows {
		f.SetCellValue(sheet, cellName(1, row), pr.Name)
		f.SetCellStyle(sheet, cellName(1, row), cellName(32, row), baseStyle)

		for d := 1; d <= 31; d++ {
			mark, ok := pr.Days[d]
			if !ok {
				continue
			}
			cell := cellName(1+d, row)
			f.SetCellValue(sheet, cell, mark)
			if mark == domain.MarkRest {
				f.SetCellStyle(sheet, cell, cell, restStyle)
			} else {
				f.SetCellStyle(sheet, cell, cell, workStyle)
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write sunday workbook", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("sundays_%s_%d-%d.xlsx", category, month, year)
	return buf, filename, nil
}

// DayOffWeek renders the weekly day-off board of a single category ×
// shift bucket: one column per weekday, one employee per cell.
func (s *exportService) DayOffWeek(category domain.WorkerCategory, shift domain.ShiftBucket) (*bytes.Buffer, string, error) {
	groups, err := s.dayOff.WeekOverview()
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := bucketTitle(category, shift)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	if err := s.writeDayOffSheet(f, sheet, bucketGroups(groups, category, shift)); err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write day-off workbook", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("dayoffs_%s_%s.xlsx", category, shift)
	return buf, filename, nil
}

// DayOffWeekAll renders all four buckets as one sheet each in a single
// workbook.
func (s *exportService) DayOffWeekAll() (*bytes.Buffer, string, error) {
	groups, err := s.dayOff.WeekOverview()
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, bucket := range dayOffBuckets {
		sheet := bucketTitle(bucket.Category, bucket.Shift)
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return nil, "", err
		}
		if i == 0 {
			f.SetActiveSheet(idx)
			f.DeleteSheet("Sheet1")
		}
		if err := s.writeDayOffSheet(f, sheet, bucketGroups(groups, bucket.Category, bucket.Shift)); err != nil {
			return nil, "", err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write day-off workbook", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	return buf, "dayoffs_all.xlsx", nil
}

func (s *exportService) writeDayOffSheet(f *excelize.File, sheet string, groups []*entity.DayOffGroup) error {
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
	})
	cardStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", sheet)
	f.MergeCell(sheet, "A1", "H1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	for i, group := range groups {
		col := i + 1

		header := cellName(col, 2)
		f.SetCellValue(sheet, header, strings.ToUpper(group.Weekday))
		f.SetCellStyle(sheet, header, header, headerStyle)

		row := 3
		if len(group.Employees) == 0 {
			cell := cellName(col, row)
			f.SetCellValue(sheet, cell, "No one")
			f.SetCellStyle(sheet, cell, cell, cardStyle)
		} else {
			for _, e := range group.Employees {
				cell := cellName(col, row)
				f.SetCellValue(sheet, cell, fmt.Sprintf("%s (%s)", e.Name, e.ShiftStart))
				f.SetCellStyle(sheet, cell, cell, cardStyle)
				row++
			}
		}

		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		f.SetColWidth(sheet, colName, colName, 22)
	}

	return nil
}

// DailyAssignments renders one date's terminal roster for one shift,
// grouped under in-house and outsourced subheadings. Category and
// day-off labels come from the registry's current record, matching the
// boards posted on the shop floor.
func (s *exportService) DailyAssignments(date string, shift domain.ShiftBucket) (*bytes.Buffer, string, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, "", fmt.Errorf("invalid date: %w", err)
	}

	assignments, err := s.dm.Assignment().ListByDate(date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Morning"
	title := "7:00 - 11:00"
	if shift == domain.ShiftAfternoon {
		sheet = "Afternoon"
		title = "12:00 - 15:30"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 8)
	f.SetColWidth(sheet, "C", "C", 26)
	f.SetColWidth(sheet, "D", "D", 15)
	f.SetColWidth(sheet, "E", "E", 15)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{columnFill}, Pattern: 1},
		Border:    thinBorders(),
	})
	subheadStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{subheadFill}, Pattern: 1},
		Border:    thinBorders(),
	})
	rowStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", "E1")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	headers := []string{"DATE", "TERMINAL", "NAME", "CATEGORY", "DAY OFF"}
	for i, h := range headers {
		f.SetCellValue(sheet, cellName(i+1, 2), h)
	}
	f.SetCellStyle(sheet, "A2", "E2", headerStyle)

	var inHouse, outsourced [][]interface{}
	for _, a := range assignments {
		employee, err := s.dm.Employee().GetByName(a.EmployeeName)
		if err != nil {
			return nil, "", err
		}
		if employee == nil || employee.ShiftBucket() != shift {
			continue
		}

		line := []interface{}{
			a.Date,
			a.Terminal,
			employee.Name,
			domain.CategoryLabels[employee.WorkerCategory],
			strings.ToUpper(employee.WeeklyDayOff),
		}
		if employee.WorkerCategory == domain.CategoryOutsourced {
			outsourced = append(outsourced, line)
		} else {
			inHouse = append(inHouse, line)
		}
	}

	row := 3
	writeGroup := func(label string, lines [][]interface{}) {
		if len(lines) == 0 {
			return
		}
		f.SetCellValue(sheet, cellName(1, row), label)
		f.MergeCell(sheet, cellName(1, row), cellName(5, row))
		f.SetCellStyle(sheet, cellName(1, row), cellName(5, row), subheadStyle)
		row++

		for _, line := range lines {
			for i, v := range line {
				f.SetCellValue(sheet, cellName(i+1, row), v)
			}
			f.SetCellStyle(sheet, cellName(1, row), cellName(5, row), rowStyle)
			row++
		}
	}
	writeGroup(domain.CategoryLabels[domain.CategoryInHouse], inHouse)
	writeGroup(domain.CategoryLabels[domain.CategoryOutsourced], outsourced)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write assignments workbook", zap.Error(err))
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("roster_%s_%s.xlsx", shift, date)
	return buf, filename, nil
}

func bucketTitle(category domain.WorkerCategory, shift domain.ShiftBucket) string {
	return fmt.Sprintf("%s %s", domain.CategoryLabels[category], strings.ToUpper(string(shift)))
}

func bucketGroups(groups []*entity.DayOffGroup, category domain.WorkerCategory, shift domain.ShiftBucket) []*entity.DayOffGroup {
	var out []*entity.DayOffGroup
	for _, g := range groups {
		if g.Category == category && g.Shift == shift {
			out = append(out, g)
		}
	}
	return out
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}
