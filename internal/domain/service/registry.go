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

// defaultShiftStart is given to employees registered through the
// Sunday-enrollment flow, which does not collect a shift time.
const defaultShiftStart = "09:00"

type registryService struct {
	dm       contract.DataManager
	validate *validator.Validate
	logger   *zap.Logger
}

func newRegistry(dm contract.DataManager, validate *validator.Validate, logger *zap.Logger) *registryService {
	return &registryService{
		dm:       dm,
		validate: validate,
		logger:   logger.Named("registry"),
	}
}

func (s *registryService) Upsert(ctx context.Context, form entity.EmployeeForm) (*entity.Employee, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	var saved *entity.Employee
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		existing, err := dm.Employee().GetByName(form.Name)
		if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}

		if existing != nil {
			applyForm(existing, form)
			if err := dm.Employee().Update(existing); err != nil {
				return err
			}
			saved = existing
			return nil
		}

		employee := &entity.Employee{}
		applyForm(employee, form)
		if err := dm.Employee().Create(employee); err != nil {
			return err
		}
		saved = employee
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee upserted", zap.String("name", saved.Name), zap.Int64("id", saved.ID))
	return saved, nil
}

func (s *registryService) Rename(ctx context.Context, oldName string, form entity.EmployeeForm) (*entity.Employee, error) {
	if err := s.validateForm(form); err != nil {
		return nil, err
	}

	var saved *entity.Employee
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		employee, err := dm.Employee().GetByName(oldName)
		if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}

		// The new name may only collide with the employee itself
		// (case changes are allowed).
		other, err := dm.Employee().GetByName(form.Name)
		if err != nil {
			return fmt.Errorf("failed to check name collision: %w", err)
		}
		if other != nil && other.ID != employee.ID {
			return domain.ErrNameTaken
		}

		applyForm(employee, form)
		if err := dm.Employee().Update(employee); err != nil {
			return err
		}
		saved = employee
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee renamed",
		zap.String("oldName", oldName),
		zap.String("newName", saved.Name),
		zap.Int64("id", saved.ID),
	)
	return saved, nil
}

// Remove deletes by exact name; a miss is silently tolerated. The
// ledger rows of the removed employee cascade away with it.
func (s *registryService) Remove(name string) error {
	employee, err := s.dm.Employee().GetByExactName(name)
	if err != nil {
		return fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil
	}

	if err := s.dm.Employee().Delete(employee.ID); err != nil {
		return err
	}

	s.logger.Info("employee removed", zap.String("name", name), zap.Int64("id", employee.ID))
	return nil
}

func (s *registryService) List() ([]*entity.Employee, error) {
	return s.dm.Employee().List()
}

func (s *registryService) EnrollSunday(ctx context.Context, form entity.SundayEnrollmentForm) (*entity.Employee, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	if err := checkSundayAnchor(form.FirstWorkedSunday); err != nil {
		return nil, err
	}

	var saved *entity.Employee
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		employee, err := dm.Employee().GetByName(form.Name)
		if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}

		if employee != nil {
			employee.SundayCategory = form.SundayCategory
			employee.FirstWorkedSunday = form.FirstWorkedSunday
			if err := dm.Employee().Update(employee); err != nil {
				return err
			}
			saved = employee
			return nil
		}

		// Unknown name: register a minimal record. The full employee
		// form is the place to complete it later.
		employee = &entity.Employee{
			Name:              form.Name,
			WorkerCategory:    domain.CategoryInHouse,
			ShiftStart:        defaultShiftStart,
			SundayCategory:    form.SundayCategory,
			FirstWorkedSunday: form.FirstWorkedSunday,
		}
		if err := dm.Employee().Create(employee); err != nil {
			return err
		}
		saved = employee
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("employee enrolled in sunday rotation",
		zap.String("name", saved.Name),
		zap.String("category", string(saved.SundayCategory)),
		zap.String("firstWorkedSunday", saved.FirstWorkedSunday),
	)
	return saved, nil
}

func (s *registryService) validateForm(form entity.EmployeeForm) error {
	if err := s.validate.Struct(form); err != nil {
		return err
	}
	return checkSundayAnchor(form.FirstWorkedSunday)
}

// checkSundayAnchor enforces that a rotation anchor, when present,
// falls on a Sunday. Format errors are caught by the form validator
// before this runs.
func checkSundayAnchor(anchor string) error {
	if anchor == "" {
		return nil
	}
	d, err := time.Parse(domain.DateLayout, anchor)
	if err != nil {
		return fmt.Errorf("invalid first worked sunday: %w", err)
	}
	if d.Weekday() != time.Sunday {
		return domain.ErrAnchorNotSunday
	}
	return nil
}

func applyForm(employee *entity.Employee, form entity.EmployeeForm) {
	employee.Name = form.Name
	employee.WorkerCategory = form.WorkerCategory
	if employee.WorkerCategory == "" {
		employee.WorkerCategory = domain.CategoryInHouse
	}
	employee.WeeklyDayOff = form.WeeklyDayOff
	employee.ShiftStart = form.ShiftStart
	employee.SundayCategory = form.SundayCategory
	employee.FirstWorkedSunday = form.FirstWorkedSunday
}
