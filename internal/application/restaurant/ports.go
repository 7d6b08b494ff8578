package restaurant

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error nada de lo escrito queda visible; la conexión se libera en todos los casos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		restaurantRepo repository.RestaurantRepository,
		menuRepo repository.MenuRepository,
	) error) error
}
