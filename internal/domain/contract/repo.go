package contract

import (
	"context"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Employee() EmployeeRepo
	Assignment() AssignmentRepo
}

// EmployeeRepo defines the contract for the employee registry
type EmployeeRepo interface {
	Create(employee *entity.Employee) error
	// GetByName matches case-insensitively; returns (nil, nil) on miss.
	GetByName(name string) (*entity.Employee, error)
	// GetByExactName matches byte-for-byte; returns (nil, nil) on miss.
	GetByExactName(name string) (*entity.Employee, error)
	// List returns all employees in insertion order.
	List() ([]*entity.Employee, error)
	// ListBySundayCategory returns enrolled employees of one rotation
	// category in insertion order.
	ListBySundayCategory(category domain.SundayCategory) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	// Delete removes an employee; its assignments cascade away.
	Delete(employeeID int64) error
}

// AssignmentRepo defines the contract for the assignment ledger
type AssignmentRepo interface {
	Create(assignment *entity.Assignment) error
	// GetByKey returns the assignment occupying (date, terminal, shift),
	// or (nil, nil) when the slot is free.
	GetByKey(date, terminal string, shift domain.ShiftBucket) (*entity.Assignment, error)
	// ListByDate returns assignments for one date ordered by terminal
	// using lexicographic string comparison.
	ListByDate(date string) ([]*entity.Assignment, error)
	// DeleteByKey removes the matching assignment if present.
	DeleteByKey(date, terminal string, shift domain.ShiftBucket) error
}
