package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia para el cardápio.
type MenuRepository interface {
	// CreateItem devuelve domain.ErrRestaurantNotFound si el restaurante no existe.
	CreateItem(ctx context.Context, item *entity.MenuItem) error
	// AddIngredient devuelve domain.ErrInvalidReference si el ingrediente no existe.
	AddIngredient(ctx context.Context, link *entity.IngredientLink) error
	// ListByRestaurant incluye los ingredientes de cada ítem.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.MenuItem, error)
}
