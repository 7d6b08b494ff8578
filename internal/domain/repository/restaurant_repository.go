package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// RestaurantRepository define el puerto de persistencia para Restaurant y su PaymentConfig.
// Las implementaciones aceptan pool o tx, así que se usa tanto fuera como dentro de TxRunner.
type RestaurantRepository interface {
	Create(ctx context.Context, r *entity.Restaurant) error
	CreatePaymentConfig(ctx context.Context, cfg *entity.PaymentConfig) error
	// GetByID incluye PaymentConfig; (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Restaurant, error)
	// GetForUpdate bloquea el restaurante y su configuración (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Restaurant, error)
	// ListActive incluye PaymentConfig de cada restaurante activo.
	ListActive(ctx context.Context) ([]*entity.Restaurant, error)
	// UpdateDetails y UpdatePaymentConfig devuelven domain.ErrRestaurantNotFound si no afectan filas.
	UpdateDetails(ctx context.Context, id int64, d entity.RestaurantDetails) error
	UpdatePaymentConfig(ctx context.Context, cfg *entity.PaymentConfig) error
}
