package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/comercio-api/internal/application/dto"
	"github.com/jhoicas/comercio-api/internal/domain"
	"github.com/jhoicas/comercio-api/internal/domain/entity"
	"github.com/jhoicas/comercio-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se toca aquí:
// se mueve vía ledger y la carga inicial de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductDTO, error) {
	if in.Name == "" || in.PricePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderPoint != nil && in.ReorderPoint.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	product := &entity.Product{
		Name:         in.Name,
		QuantityUnit: in.QuantityUnit,
		PricePerUnit: in.PricePerUnit,
		ReorderPoint: in.ReorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductDTO(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductDTO(p))
	}
	return items, nil
}

// Update actualiza un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductDTO, error) {
	if in.Name == "" || in.PricePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.QuantityUnit = in.QuantityUnit
	product.PricePerUnit = in.PricePerUnit
	product.ReorderPoint = in.ReorderPoint
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	if p == nil {
		return nil
	}
	return &dto.ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		QuantityUnit: p.QuantityUnit,
		PricePerUnit: p.PricePerUnit,
		ReorderPoint: p.ReorderPoint,
	}
}
