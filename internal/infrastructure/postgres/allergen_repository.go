package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.AllergenRepository = (*AllergenRepo)(nil)

// AllergenRepo lectura de alérgenos.
type AllergenRepo struct {
	db Querier
}

// NewAllergenRepository construye el repositorio de alérgenos.
func NewAllergenRepository(db Querier) *AllergenRepo {
	return &AllergenRepo{db: db}
}

// List devuelve todos los alérgenos ordenados por nombre.
func (r *AllergenRepo) List(ctx context.Context) ([]entity.Allergen, error) {
	rows, err := r.db.Query(ctx, `SELECT id_alergeno, nome, COALESCE(descricao, '') FROM alergenos ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list allergens: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Allergen, 0)
	for rows.Next() {
		var a entity.Allergen
		if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
			return nil, fmt.Errorf("scan allergen: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
