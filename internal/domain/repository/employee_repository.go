package repository

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// El email es la llave natural de búsqueda.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, email string) error
}
