package database

import (
	"database/sql"
	"fmt"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
)

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

const employeeColumns = `id, name, worker_category, weekly_day_off, shift_start, sunday_category, first_worked_sunday, created_at`

func (r *employeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, worker_category, weekly_day_off, shift_start, sunday_category, first_worked_sunday)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.Name,
		employee.WorkerCategory,
		employee.WeeklyDayOff,
		employee.ShiftStart,
		employee.SundayCategory,
		employee.FirstWorkedSunday,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	employee.ID = id
	return nil
}

// GetByName relies on the NOCASE collation of the name column, so the
// match is case-insensitive.
func (r *employeeRepo) GetByName(name string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE name = ?
	`

	return r.scanOne(r.db.QueryRow(query, name))
}

// GetByExactName overrides the column collation so only a byte-for-byte
// match is returned.
func (r *employeeRepo) GetByExactName(name string) (*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE name = ? COLLATE BINARY
	`

	return r.scanOne(r.db.QueryRow(query, name))
}

func (r *employeeRepo) List() ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY id ASC
	`

	return r.queryMany(query)
}

func (r *employeeRepo) ListBySundayCategory(category domain.SundayCategory) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE sunday_category = ?
		ORDER BY id ASC
	`

	return r.queryMany(query, category)
}

func (r *employeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = ?, worker_category = ?, weekly_day_off = ?, shift_start = ?, sunday_category = ?, first_worked_sunday = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		employee.Name,
		employee.WorkerCategory,
		employee.WeeklyDayOff,
		employee.ShiftStart,
		employee.SundayCategory,
		employee.FirstWorkedSunday,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

func (r *employeeRepo) Delete(employeeID int64) error {
	query := `DELETE FROM employees WHERE id = ?`

	_, err := r.db.Exec(query, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (r *employeeRepo) scanOne(row *sql.Row) (*entity.Employee, error) {
	employee := &entity.Employee{}
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.WorkerCategory,
		&employee.WeeklyDayOff,
		&employee.ShiftStart,
		&employee.SundayCategory,
		&employee.FirstWorkedSunday,
		&employee.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

func (r *employeeRepo) queryMany(query string, args ...interface{}) ([]*entity.Employee, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee := &entity.Employee{}
		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.WorkerCategory,
			&employee.WeeklyDayOff,
			&employee.ShiftStart,
			&employee.SundayCategory,
			&employee.FirstWorkedSunday,
			&employee.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, nil
}
