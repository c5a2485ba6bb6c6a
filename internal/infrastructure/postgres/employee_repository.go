package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado. Email duplicado devuelve ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (email, name, position, department, contact, joining_date, photo_file_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		employee.Email, employee.Name, employee.Position, employee.Department,
		employee.Contact, employee.JoiningDate, employee.PhotoFileID, employee.CreatedAt,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByEmail obtiene un empleado por email. Devuelve nil si no existe.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `
		SELECT id, email, name, position, department, contact, joining_date, photo_file_id, created_at
		FROM employees WHERE email = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, email).Scan(
		&e.ID, &e.Email, &e.Name, &e.Position, &e.Department,
		&e.Contact, &e.JoiningDate, &e.PhotoFileID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List lista todos los empleados ordenados por nombre.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT id, email, name, position, department, contact, joining_date, photo_file_id, created_at
		FROM employees ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Email, &e.Name, &e.Position, &e.Department,
			&e.Contact, &e.JoiningDate, &e.PhotoFileID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza los datos de un empleado, buscado por email.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, position = $3, department = $4, contact = $5, joining_date = $6, photo_file_id = $7
		WHERE email = $1`
	_, err := r.q.Exec(ctx, query,
		employee.Email, employee.Name, employee.Position, employee.Department,
		employee.Contact, employee.JoiningDate, employee.PhotoFileID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por email.
func (r *EmployeeRepo) Delete(ctx context.Context, email string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
