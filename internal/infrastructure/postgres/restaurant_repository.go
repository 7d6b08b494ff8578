package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

const constraintConfigRestaurant = "fk_config_pagamento_restaurante"

// RestaurantRepo implementación de RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	db Querier
}

// NewRestaurantRepository construye el repositorio sobre el pool o una tx.
func NewRestaurantRepository(db Querier) *RestaurantRepo {
	return &RestaurantRepo{db: db}
}

// selectRestaurant trae el restaurante y su configuración de pago.
// El LEFT JOIN tolera datos legados sin configuración (has_config = false).
const selectRestaurant = `
	SELECT r.id_restaurante, r.nome_fantasia, COALESCE(r.razao_social, ''), r.cnpj, COALESCE(r.descricao, ''),
	       r.categoria_principal, r.cidade, r.estado, r.ativo, r.criado_em, r.atualizado_em,
	       c.id_restaurante IS NOT NULL,
	       COALESCE(c.permite_pagar_antes, false), COALESCE(c.permite_pagar_depois, false),
	       COALESCE(c.permite_ambos, false), COALESCE(c.reserva_mesa_paga, false),
	       COALESCE(c.reserva_mesa_gratis, false), COALESCE(c.taxa_servico_percentual, 0)
	FROM restaurantes r
	LEFT JOIN restaurantes_config_pagamento c ON c.id_restaurante = r.id_restaurante`

// Create inserta el restaurante activo y completa ID y timestamps.
func (r *RestaurantRepo) Create(ctx context.Context, rest *entity.Restaurant) error {
	query := `
		INSERT INTO restaurantes (nome_fantasia, razao_social, cnpj, descricao, categoria_principal, cidade, estado, ativo)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, $7, $8)
		RETURNING id_restaurante, criado_em, atualizado_em`
	err := r.db.QueryRow(ctx, query,
		rest.TradeName, rest.CompanyName, rest.CNPJ, rest.Description, rest.MainCategory,
		rest.City, rest.State, rest.Active,
	).Scan(&rest.ID, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// CreatePaymentConfig inserta la configuración de pago del restaurante.
func (r *RestaurantRepo) CreatePaymentConfig(ctx context.Context, cfg *entity.PaymentConfig) error {
	query := `
		INSERT INTO restaurantes_config_pagamento (
			id_restaurante, permite_pagar_antes, permite_pagar_depois, permite_ambos,
			reserva_mesa_paga, reserva_mesa_gratis, taxa_servico_percentual)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		cfg.RestaurantID, cfg.AllowsPayBefore, cfg.AllowsPayAfter, cfg.AllowsBoth,
		cfg.PaidTableReservation, cfg.FreeTableReservation, cfg.ServiceFeePercent,
	)
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok && c == constraintConfigRestaurant {
			return domain.ErrRestaurantNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("configuración de pago existente: %w", domain.ErrConflict)
		}
		if isCheckViolation(err) {
			return fmt.Errorf("tasa de servicio fuera de rango: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert payment config: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante activo con su configuración de pago.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx, selectRestaurant+` WHERE r.id_restaurante = $1 AND r.ativo`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return rest, nil
}

// GetForUpdate igual que GetByID pero bloquea la fila del restaurante hasta el fin de la tx.
// Todas las escrituras de configuración pasan antes por este bloqueo.
func (r *RestaurantRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Restaurant, error) {
	rest, err := scanRestaurant(r.db.QueryRow(ctx, selectRestaurant+` WHERE r.id_restaurante = $1 AND r.ativo FOR UPDATE OF r`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant for update: %w", err)
	}
	return rest, nil
}

// ListActive lista los restaurantes activos ordenados por ID.
func (r *RestaurantRepo) ListActive(ctx context.Context) ([]*entity.Restaurant, error) {
	rows, err := r.db.Query(ctx, selectRestaurant+` WHERE r.ativo ORDER BY r.id_restaurante`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, rest)
	}
	return list, rows.Err()
}

// UpdateDetails actualiza los campos descriptivos y atualizado_em.
func (r *RestaurantRepo) UpdateDetails(ctx context.Context, id int64, d entity.RestaurantDetails) error {
	query := `
		UPDATE restaurantes
		SET nome_fantasia = $2, descricao = NULLIF($3, ''), categoria_principal = $4, atualizado_em = now()
		WHERE id_restaurante = $1`
	tag, err := r.db.Exec(ctx, query, id, d.TradeName, d.Description, d.MainCategory)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// UpdatePaymentConfig reemplaza la configuración de pago del restaurante.
func (r *RestaurantRepo) UpdatePaymentConfig(ctx context.Context, cfg *entity.PaymentConfig) error {
	query := `
		UPDATE restaurantes_config_pagamento
		SET permite_pagar_antes = $2, permite_pagar_depois = $3, permite_ambos = $4,
		    reserva_mesa_paga = $5, reserva_mesa_gratis = $6, taxa_servico_percentual = $7
		WHERE id_restaurante = $1`
	tag, err := r.db.Exec(ctx, query,
		cfg.RestaurantID, cfg.AllowsPayBefore, cfg.AllowsPayAfter, cfg.AllowsBoth,
		cfg.PaidTableReservation, cfg.FreeTableReservation, cfg.ServiceFeePercent,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("tasa de servicio fuera de rango: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update payment config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func scanRestaurant(row scanner) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	var cfg entity.PaymentConfig
	var hasConfig bool
	if err := row.Scan(
		&rest.ID, &rest.TradeName, &rest.CompanyName, &rest.CNPJ, &rest.Description,
		&rest.MainCategory, &rest.City, &rest.State, &rest.Active, &rest.CreatedAt, &rest.UpdatedAt,
		&hasConfig,
		&cfg.AllowsPayBefore, &cfg.AllowsPayAfter, &cfg.AllowsBoth,
		&cfg.PaidTableReservation, &cfg.FreeTableReservation, &cfg.ServiceFeePercent,
	); err != nil {
		return nil, err
	}
	if hasConfig {
		cfg.RestaurantID = rest.ID
		rest.PaymentConfig = &cfg
	}
	return &rest, nil
}
