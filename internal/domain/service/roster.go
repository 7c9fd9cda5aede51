package service

import (
	"context"
	"fmt"
	"time"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type rosterService struct {
	dm       contract.DataManager
	validate *validator.Validate
	logger   *zap.Logger
}

func newRoster(dm contract.DataManager, validate *validator.Validate, logger *zap.Logger) *rosterService {
	return &rosterService{
		dm:       dm,
		validate: validate,
		logger:   logger.Named("roster"),
	}
}

func (s *rosterService) Assign(ctx context.Context, form entity.AssignmentForm) (*entity.Assignment, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	var created *entity.Assignment
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		employee, err := dm.Employee().GetByName(form.Employee)
		if err != nil {
			return fmt.Errorf("failed to resolve employee: %w", err)
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}

		existing, err := dm.Assignment().GetByKey(form.Date, form.Terminal, form.Shift)
		if err != nil {
			return fmt.Errorf("failed to check terminal slot: %w", err)
		}
		if existing != nil {
			return domain.ErrTerminalTaken
		}

		assignment := &entity.Assignment{
			Date:       form.Date,
			Terminal:   form.Terminal,
			EmployeeID: employee.ID,
			// Category is captured as it stands today; later changes to
			// the employee do not rewrite history.
			WorkerCategory: employee.WorkerCategory,
			Shift:          form.Shift,
		}
		if err := dm.Assignment().Create(assignment); err != nil {
			return err
		}
		assignment.EmployeeName = employee.Name
		created = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("terminal assigned",
		zap.String("date", created.Date),
		zap.String("terminal", created.Terminal),
		zap.String("employee", created.EmployeeName),
		zap.String("shift", string(created.Shift)),
	)
	return created, nil
}

func (s *rosterService) Unassign(date, terminal string, shift domain.ShiftBucket) error {
	return s.dm.Assignment().DeleteByKey(date, terminal, shift)
}

func (s *rosterService) ListForDate(date string) ([]*entity.Assignment, error) {
	return s.dm.Assignment().ListByDate(date)
}

// AvailableEmployees returns, in registry order, the employees who can
// take a terminal on the given date and shift: their start time falls
// in the shift bucket and the date is not their weekly day off.
func (s *rosterService) AvailableEmployees(date string, shift domain.ShiftBucket) ([]*entity.Employee, error) {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	weekday := domain.WeekdayName(d.Weekday())

	employees, err := s.dm.Employee().List()
	if err != nil {
		return nil, err
	}

	var available []*entity.Employee
	for _, e := range employees {
		if e.ShiftBucket() != shift {
			continue
		}
		if e.WeeklyDayOff == weekday {
			continue
		}
		available = append(available, e)
	}
	return available, nil
}
