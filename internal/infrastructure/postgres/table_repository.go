package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementación de TableRepository sobre PostgreSQL.
type TableRepo struct {
	db Querier
}

// NewTableRepository construye el repositorio de mesas.
func NewTableRepository(db Querier) *TableRepo {
	return &TableRepo{db: db}
}

// Create inserta la mesa y completa su ID.
func (r *TableRepo) Create(ctx context.Context, t *entity.Table) error {
	query := `
		INSERT INTO mesas (id_restaurante, identificador_mesa, capacidade)
		VALUES ($1, $2, $3)
		RETURNING id_mesa`
	err := r.db.QueryRow(ctx, query, t.RestaurantID, t.Identifier, t.Capacity).Scan(&t.ID)
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return domain.ErrRestaurantNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("capacidad debe ser positiva: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// ListByRestaurant lista las mesas de un restaurante ordenadas por ID.
func (r *TableRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.Table, error) {
	byRestaurant, err := r.ListByRestaurants(ctx, []int64{restaurantID})
	if err != nil {
		return nil, err
	}
	if tables := byRestaurant[restaurantID]; tables != nil {
		return tables, nil
	}
	return []entity.Table{}, nil
}

// ListByRestaurants trae las mesas de varios restaurantes en una sola consulta.
func (r *TableRepo) ListByRestaurants(ctx context.Context, restaurantIDs []int64) (map[int64][]entity.Table, error) {
	out := make(map[int64][]entity.Table, len(restaurantIDs))
	if len(restaurantIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT id_mesa, id_restaurante, identificador_mesa, capacidade
		FROM mesas WHERE id_restaurante = ANY($1)
		ORDER BY id_restaurante, id_mesa`
	rows, err := r.db.Query(ctx, query, restaurantIDs)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.Identifier, &t.Capacity); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		out[t.RestaurantID] = append(out[t.RestaurantID], t)
	}
	return out, rows.Err()
}
