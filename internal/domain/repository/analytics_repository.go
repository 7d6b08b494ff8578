package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura para analítica del restaurante.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// TopMenuItems devuelve los `limit` ítems más pedidos en las sesiones del restaurante.
	// Empates se ordenan por id de ítem ascendente.
	TopMenuItems(ctx context.Context, restaurantID int64, limit int) ([]entity.TopMenuItem, error)

	// SessionsByWeekday cuenta sesiones por día de la semana de su creación, evaluado en loc.
	// Los días sin sesiones no aparecen.
	SessionsByWeekday(ctx context.Context, restaurantID int64, loc *time.Location) ([]entity.WeekdayCount, error)
}
