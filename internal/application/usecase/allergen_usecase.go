package usecase

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// AllergenUseCase lista de referencia de alérgenos.
type AllergenUseCase struct {
	repo repository.AllergenRepository
}

// NewAllergenUseCase construye el caso de uso.
func NewAllergenUseCase(repo repository.AllergenRepository) *AllergenUseCase {
	return &AllergenUseCase{repo: repo}
}

// List devuelve todos los alérgenos.
func (uc *AllergenUseCase) List(ctx context.Context) ([]dto.AllergenResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AllergenResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.FromAllergen(a))
	}
	return out, nil
}
