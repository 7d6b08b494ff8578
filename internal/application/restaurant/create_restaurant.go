package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// CreateRestaurantUseCase crea el restaurante y su configuración de pago por defecto en una sola tx.
type CreateRestaurantUseCase struct {
	txRunner TxRunner
}

// NewCreateRestaurantUseCase construye el caso de uso.
func NewCreateRestaurantUseCase(txRunner TxRunner) *CreateRestaurantUseCase {
	return &CreateRestaurantUseCase{txRunner: txRunner}
}

// Create valida la entrada e inserta restaurante + PaymentConfig. Si la configuración falla,
// el restaurante tampoco queda persistido.
func (uc *CreateRestaurantUseCase) Create(ctx context.Context, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	rest := &entity.Restaurant{
		TradeName:    strings.TrimSpace(in.TradeName),
		CompanyName:  strings.TrimSpace(in.CompanyName),
		CNPJ:         strings.TrimSpace(in.CNPJ),
		Description:  strings.TrimSpace(in.Description),
		MainCategory: strings.TrimSpace(in.MainCategory),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		Active:       true,
	}
	if err := validateRestaurant(rest); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(restaurantRepo repository.RestaurantRepository, _ repository.MenuRepository) error {
		if err := restaurantRepo.Create(ctx, rest); err != nil {
			return err
		}
		cfg := entity.DefaultPaymentConfig(rest.ID)
		if err := restaurantRepo.CreatePaymentConfig(ctx, cfg); err != nil {
			return err
		}
		rest.PaymentConfig = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.FromRestaurant(rest)
	return &out, nil
}

func validateRestaurant(r *entity.Restaurant) error {
	required := []struct{ field, value string }{
		{"tradeName", r.TradeName},
		{"cnpj", r.CNPJ},
		{"mainCategory", r.MainCategory},
		{"city", r.City},
		{"state", r.State},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, f.field)
		}
	}
	return nil
}
