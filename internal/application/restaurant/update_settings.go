package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// UpdateSettingsUseCase aplica un PATCH sobre los datos descriptivos y la configuración de pago
// como una sola unidad atómica.
type UpdateSettingsUseCase struct {
	txRunner TxRunner
}

// NewUpdateSettingsUseCase construye el caso de uso.
func NewUpdateSettingsUseCase(txRunner TxRunner) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{txRunner: txRunner}
}

// UpdateSettings bloquea el restaurante (SELECT FOR UPDATE), mezcla los campos enviados con los
// actuales, actualiza ambas tablas y relee la vista combinada dentro de la misma tx.
// Restaurante inexistente: domain.ErrRestaurantNotFound y nada se persiste.
func (uc *UpdateSettingsUseCase) UpdateSettings(ctx context.Context, restaurantID int64, in dto.UpdateSettingsRequest) (*dto.RestaurantResponse, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantId inválido", domain.ErrInvalidInput)
	}
	if err := validateSettings(in); err != nil {
		return nil, err
	}

	var updated *entity.Restaurant
	err := uc.txRunner.Run(ctx, func(restaurantRepo repository.RestaurantRepository, _ repository.MenuRepository) error {
		current, err := restaurantRepo.GetForUpdate(ctx, restaurantID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrRestaurantNotFound
		}

		if err := restaurantRepo.UpdateDetails(ctx, restaurantID, mergeDetails(current, in)); err != nil {
			return err
		}

		cfg, isNew := current.PaymentConfig, false
		if cfg == nil {
			cfg, isNew = entity.DefaultPaymentConfig(restaurantID), true
		}
		merged := mergePaymentConfig(*cfg, in)
		if isNew {
			err = restaurantRepo.CreatePaymentConfig(ctx, &merged)
		} else {
			err = restaurantRepo.UpdatePaymentConfig(ctx, &merged)
		}
		if err != nil {
			return err
		}

		updated, err = restaurantRepo.GetByID(ctx, restaurantID)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrRestaurantNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.FromRestaurant(updated)
	return &out, nil
}

func validateSettings(in dto.UpdateSettingsRequest) error {
	if in.TradeName != nil && strings.TrimSpace(*in.TradeName) == "" {
		return fmt.Errorf("%w: tradeName no puede estar vacío", domain.ErrInvalidInput)
	}
	if in.MainCategory != nil && strings.TrimSpace(*in.MainCategory) == "" {
		return fmt.Errorf("%w: mainCategory no puede estar vacío", domain.ErrInvalidInput)
	}
	if fee := in.ServiceFeePercent; fee != nil {
		if fee.LessThan(decimal.Zero) || fee.GreaterThan(entity.MaxServiceFeePercent) {
			return fmt.Errorf("%w: serviceFeePercent debe estar entre 0 y 100", domain.ErrInvalidInput)
		}
	}
	return nil
}

func mergeDetails(current *entity.Restaurant, in dto.UpdateSettingsRequest) entity.RestaurantDetails {
	d := entity.RestaurantDetails{
		TradeName:    current.TradeName,
		Description:  current.Description,
		MainCategory: current.MainCategory,
	}
	if in.TradeName != nil {
		d.TradeName = strings.TrimSpace(*in.TradeName)
	}
	if in.Description != nil {
		d.Description = strings.TrimSpace(*in.Description)
	}
	if in.MainCategory != nil {
		d.MainCategory = strings.TrimSpace(*in.MainCategory)
	}
	return d
}

func mergePaymentConfig(cfg entity.PaymentConfig, in dto.UpdateSettingsRequest) entity.PaymentConfig {
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setBool(&cfg.AllowsPayBefore, in.AllowsPayBefore)
	setBool(&cfg.AllowsPayAfter, in.AllowsPayAfter)
	setBool(&cfg.AllowsBoth, in.AllowsBoth)
	setBool(&cfg.PaidTableReservation, in.PaidTableReservation)
	setBool(&cfg.FreeTableReservation, in.FreeTableReservation)
	if in.ServiceFeePercent != nil {
		cfg.ServiceFeePercent = *in.ServiceFeePercent
	}
	return cfg
}
