package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre sesiones y pedidos.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db Querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// TopMenuItems cuenta los pedidos_itens por ítem en todas las sesiones del restaurante.
// Empates por id_item ascendente para que el resultado sea reproducible.
func (r *AnalyticsRepo) TopMenuItems(ctx context.Context, restaurantID int64, limit int) ([]entity.TopMenuItem, error) {
	const query = `
	SELECT pi.id_item,
	       COALESCE(ci.nome, '')      AS nome,
	       COUNT(pi.id_pedido_item)   AS total
	FROM pedidos_itens pi
	JOIN pedidos p  ON p.id_pedido  = pi.id_pedido
	JOIN sessoes s  ON s.id_sessao  = p.id_sessao
	LEFT JOIN cardapio_itens ci ON ci.id_item = pi.id_item
	WHERE s.id_restaurante = $1
	GROUP BY pi.id_item, ci.nome
	ORDER BY total DESC, pi.id_item ASC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopMenuItems: %w", err)
	}
	defer rows.Close()

	results := make([]entity.TopMenuItem, 0, limit)
	for rows.Next() {
		var row entity.TopMenuItem
		if err := rows.Scan(&row.MenuItemID, &row.Name, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.TopMenuItems scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SessionsByWeekday agrupa las sesiones por día de la semana (0 = domingo) en la zona loc.
func (r *AnalyticsRepo) SessionsByWeekday(ctx context.Context, restaurantID int64, loc *time.Location) ([]entity.WeekdayCount, error) {
	if loc == nil {
		loc = time.UTC
	}
	const query = `
	SELECT EXTRACT(DOW FROM s.criado_em AT TIME ZONE $2)::int AS dia,
	       COUNT(*)                                            AS total
	FROM sessoes s
	WHERE s.id_restaurante = $1
	GROUP BY dia
	ORDER BY dia`

	rows, err := r.db.Query(ctx, query, restaurantID, loc.String())
	if err != nil {
		return nil, fmt.Errorf("analytics.SessionsByWeekday: %w", err)
	}
	defer rows.Close()

	results := make([]entity.WeekdayCount, 0, 7)
	for rows.Next() {
		var dow int
		var count int64
		if err := rows.Scan(&dow, &count); err != nil {
			return nil, fmt.Errorf("analytics.SessionsByWeekday scan: %w", err)
		}
		results = append(results, entity.WeekdayCount{Weekday: time.Weekday(dow), Count: count})
	}
	return results, rows.Err()
}
