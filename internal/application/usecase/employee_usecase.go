package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados. El email es la llave natural.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un nuevo empleado. Email duplicado devuelve ErrDuplicate.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeDTO, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	joining, err := parseDate(in.JoiningDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	employee := &entity.Employee{
		Email:       email,
		Name:        in.Name,
		Position:    in.Position,
		Department:  in.Department,
		Contact:     in.Contact,
		JoiningDate: joining,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeDTO(employee), nil
}

// GetByEmail obtiene un empleado por email.
func (uc *EmployeeUseCase) GetByEmail(ctx context.Context, email string) (*dto.EmployeeDTO, error) {
	employee, err := uc.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeDTO(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeDTO, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeDTO(e))
	}
	return items, nil
}

// Update actualiza los datos de un empleado existente, buscado por email.
func (uc *EmployeeUseCase) Update(ctx context.Context, email string, in dto.EmployeeRequest) (*dto.EmployeeDTO, error) {
	employee, err := uc.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Position != "" {
		employee.Position = in.Position
	}
	if in.Department != "" {
		employee.Department = in.Department
	}
	if in.Contact != "" {
		employee.Contact = in.Contact
	}
	if in.JoiningDate != "" {
		joining, perr := parseDate(in.JoiningDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		employee.JoiningDate = joining
	}
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeDTO(employee), nil
}

// Delete elimina un empleado por email.
func (uc *EmployeeUseCase) Delete(ctx context.Context, email string) error {
	return uc.repo.Delete(ctx, strings.TrimSpace(strings.ToLower(email)))
}

func toEmployeeDTO(e *entity.Employee) *dto.EmployeeDTO {
	if e == nil {
		return nil
	}
	return &dto.EmployeeDTO{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Position:    e.Position,
		Department:  e.Department,
		Contact:     e.Contact,
		JoiningDate: e.JoiningDate.Format("2006-01-02"),
		PhotoFileID: e.PhotoFileID,
	}
}

// parseDate interpreta una fecha YYYY-MM-DD en UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
