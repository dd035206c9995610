package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// EmployeeRepo provides CRUD for the employees table.  The due amount is
// never stored: every read computes salary - saved in SQL so the value
// can't drift from its inputs.
type EmployeeRepo struct{ DB *sql.DB }

func NewEmployeeRepo(db *sql.DB) *EmployeeRepo { return &EmployeeRepo{DB: db} }

const employeeColumns = `id, name, mobile, work_type, employee_code, pf,
	advance, advance_amount, salary_type, salary, saved, (salary - saved) AS due`

func scanEmployee(row interface{ Scan(...any) error }) (model.Employee, error) {
	var e model.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Mobile, &e.WorkType, &e.EmployeeCode, &e.PF,
		&e.Advance, &e.AdvanceAmount, &e.SalaryType, &e.Salary, &e.Saved, &e.Due)
	return e, err
}

// List returns all employees sorted by name.
func (r *EmployeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+employeeColumns+" FROM employees ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches one employee, computed due included, or ErrNotFound.
func (r *EmployeeRepo) GetByID(ctx context.Context, id uint64) (model.Employee, error) {
	e, err := scanEmployee(r.DB.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, ErrNotFound
	}
	return e, err
}

// Create inserts an employee and returns the full stored row, fetched
// back so the caller receives the computed due field.
func (r *EmployeeRepo) Create(ctx context.Context, e model.Employee) (model.Employee, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO employees
		 (name, mobile, work_type, employee_code, pf, advance, advance_amount, salary_type, salary, saved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Mobile, e.WorkType, e.EmployeeCode, e.PF,
		e.Advance, e.AdvanceAmount, e.SalaryType, e.Salary, e.Saved)
	if err != nil {
		return model.Employee{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Employee{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces an employee's columns and returns the refreshed row.
func (r *EmployeeRepo) Update(ctx context.Context, id uint64, e model.Employee) (model.Employee, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE employees SET
		 name = ?, mobile = ?, work_type = ?, employee_code = ?, pf = ?,
		 advance = ?, advance_amount = ?, salary_type = ?, salary = ?, saved = ?
		 WHERE id = ?`,
		e.Name, e.Mobile, e.WorkType, e.EmployeeCode, e.PF,
		e.Advance, e.AdvanceAmount, e.SalaryType, e.Salary, e.Saved, id)
	if err != nil {
		return model.Employee{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Employee{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes an employee or returns ErrNotFound.
func (r *EmployeeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
