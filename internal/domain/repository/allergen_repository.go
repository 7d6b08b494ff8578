package repository

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// AllergenRepository lectura de la lista de referencia de alérgenos.
type AllergenRepository interface {
	List(ctx context.Context) ([]entity.Allergen, error)
}
