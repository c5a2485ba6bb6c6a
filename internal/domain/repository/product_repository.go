package repository

import (
	"context"

	"github.com/jhoicas/comercio-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error

	// NamesByIDs devuelve un mapeo id → nombre para enriquecer reportes.
	// IDs sin producto simplemente no aparecen en el mapa.
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}
