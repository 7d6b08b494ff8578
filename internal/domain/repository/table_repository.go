package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// TableRepository define el puerto de persistencia para mesas.
type TableRepository interface {
	Create(ctx context.Context, t *entity.Table) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Table, error)
	// ListByRestaurants agrupa las mesas de varios restaurantes en una sola consulta.
	ListByRestaurants(ctx context.Context, restaurantIDs []int64) (map[int64][]entity.Table, error)
}
