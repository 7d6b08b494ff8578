package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

const constraintStaffRestaurant = "fk_funcionarios_restaurante"

// StaffRepo implementación de StaffRepository sobre PostgreSQL.
type StaffRepo struct {
	db Querier
}

// NewStaffRepository construye el repositorio de personal.
func NewStaffRepository(db Querier) *StaffRepo {
	return &StaffRepo{db: db}
}

// Create asigna el usuario al personal del restaurante.
// El par (restaurante, usuario) es único: un duplicado devuelve domain.ErrConflict.
func (r *StaffRepo) Create(ctx context.Context, e *entity.RestaurantEmployee) error {
	query := `
		INSERT INTO funcionarios_restaurante (id_restaurante, id_usuario, funcao)
		VALUES ($1, $2, $3)
		RETURNING id_funcionario`
	err := r.db.QueryRow(ctx, query, e.RestaurantID, e.UserID, string(e.Role)).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el usuario ya forma parte del personal: %w", domain.ErrConflict)
		}
		if c, ok := foreignKeyViolation(err); ok {
			if c == constraintStaffRestaurant {
				return domain.ErrRestaurantNotFound
			}
			return fmt.Errorf("usuario %d: %w", e.UserID, domain.ErrInvalidReference)
		}
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

// ListByRestaurant lista el personal con el resumen del usuario (id, nombre, email).
func (r *StaffRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.RestaurantEmployee, error) {
	query := `
		SELECT f.id_funcionario, f.id_restaurante, f.id_usuario, f.funcao, u.nome_completo, u.email
		FROM funcionarios_restaurante f
		JOIN usuarios u ON u.id_usuario = f.id_usuario
		WHERE f.id_restaurante = $1
		ORDER BY f.id_funcionario`
	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	list := make([]entity.RestaurantEmployee, 0)
	for rows.Next() {
		var e entity.RestaurantEmployee
		var role string
		u := &entity.User{}
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.UserID, &role, &u.FullName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		e.Role = entity.Role(role)
		u.ID = e.UserID
		e.User = u
		list = append(list, e)
	}
	return list, rows.Err()
}
