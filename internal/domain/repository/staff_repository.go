package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// StaffRepository define el puerto de persistencia para el personal del restaurante.
type StaffRepository interface {
	// Create devuelve domain.ErrConflict si el usuario ya es parte del personal del restaurante
	// y domain.ErrInvalidReference si el usuario o el restaurante no existen.
	Create(ctx context.Context, e *entity.RestaurantEmployee) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.RestaurantEmployee, error)
}
