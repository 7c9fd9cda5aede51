package service

import (
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/condor-ops/pos-roster/internal/rotation"
)

type rotationService struct {
	dm contract.DataManager
}

func newRotation(dm contract.DataManager) *rotationService {
	return &rotationService{dm: dm}
}

// MonthPlan derives the Sunday plan for one category and month. It is
// recomputed from the anchors on every call; editing an employee's
// first worked Sunday immediately changes every month, past or future.
func (s *rotationService) MonthPlan(category domain.SundayCategory, month time.Month, year int) (*entity.RotationPlan, error) {
	employees, err := s.dm.Employee().ListBySundayCategory(category)
	if err != nil {
		return nil, err
	}

	sundays := rotation.SundaysInMonth(month, year)

	plan := &entity.RotationPlan{
		Category: category,
		Year:     year,
		Month:    int(month),
	}
	for _, sd := range sundays {
		plan.Sundays = append(plan.Sundays, sd.Day())
	}

	for _, e := range employees {
		row := entity.RotationRow{
			Name:              e.Name,
			FirstWorkedSunday: e.FirstWorkedSunday,
			Days:              make(map[int]string, len(sundays)),
		}
		for _, sd := range sundays {
			if rotation.IsRestWeek(e.FirstWorkedSunday, sd) {
				row.Days[sd.Day()] = domain.MarkRest
			} else {
				row.Days[sd.Day()] = domain.MarkWork
			}
		}
		plan.Rows = append(plan.Rows, row)
	}

	return plan, nil
}
