package database

import (
	"database/sql"
	"fmt"

	"github.com/condor-ops/pos-roster/internal/domain"
	"github.com/condor-ops/pos-roster/internal/domain/contract"
	"github.com/condor-ops/pos-roster/internal/domain/entity"
)

type assignmentRepo struct {
	db dbConn
}

func newAssignmentRepo(db dbConn) contract.AssignmentRepo {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (date, terminal, employee_id, worker_category, shift)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		assignment.Date,
		assignment.Terminal,
		assignment.EmployeeID,
		assignment.WorkerCategory,
		assignment.Shift,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

func (r *assignmentRepo) GetByKey(date, terminal string, shift domain.ShiftBucket) (*entity.Assignment, error) {
	assignment := &entity.Assignment{}
	query := `
		SELECT a.id, a.date, a.terminal, a.employee_id, e.name, a.worker_category, a.shift, a.created_at
		FROM assignments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = ? AND a.terminal = ? AND a.shift = ?
	`

	err := r.db.QueryRow(query, date, terminal, shift).Scan(
		&assignment.ID,
		&assignment.Date,
		&assignment.Terminal,
		&assignment.EmployeeID,
		&assignment.EmployeeName,
		&assignment.WorkerCategory,
		&assignment.Shift,
		&assignment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return assignment, nil
}

// ListByDate orders by the terminal column, which is TEXT, so "9" sorts
// after "101". That string ordering is the ledger's documented tie-break.
func (r *assignmentRepo) ListByDate(date string) ([]*entity.Assignment, error) {
	query := `
		SELECT a.id, a.date, a.terminal, a.employee_id, e.name, a.worker_category, a.shift, a.created_at
		FROM assignments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = ?
		ORDER BY a.terminal ASC
	`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*entity.Assignment
	for rows.Next() {
		assignment := &entity.Assignment{}
		err := rows.Scan(
			&assignment.ID,
			&assignment.Date,
			&assignment.Terminal,
			&assignment.EmployeeID,
			&assignment.EmployeeName,
			&assignment.WorkerCategory,
			&assignment.Shift,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

func (r *assignmentRepo) DeleteByKey(date, terminal string, shift domain.ShiftBucket) error {
	query := `DELETE FROM assignments WHERE date = ? AND terminal = ? AND shift = ?`

	_, err := r.db.Exec(query, date, terminal, shift)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}
