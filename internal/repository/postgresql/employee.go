package postgresql

import (
	"context"

	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.full_name, e.email, e.property_id, e.department_id, e.reporting_to,
	ra.role, e.is_active, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var role *string
	err := row.Scan(
		&emp.ID,
		&emp.FullName,
		&emp.Email,
		&emp.PropertyID,
		&emp.DepartmentID,
		&emp.ReportingTo,
		&role,
		&emp.IsActive,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if role != nil {
		r := employee.Role(*role)
		emp.Role = &r
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN role_assignments ra ON ra.employee_id = e.id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) FirstActiveWithRole(ctx context.Context, role employee.Role, propertyID *string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN role_assignments ra ON ra.employee_id = e.id
		WHERE ra.role = $1
		  AND e.is_active = true
		  AND ($2::text IS NULL OR e.property_id = $2)
		ORDER BY e.created_at ASC
		LIMIT 1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, string(role), propertyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetActiveByProperty(ctx context.Context, propertyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN role_assignments ra ON ra.employee_id = e.id
		WHERE e.property_id = $1 AND e.is_active = true
		ORDER BY e.created_at ASC
	`

	rows, err := q.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
