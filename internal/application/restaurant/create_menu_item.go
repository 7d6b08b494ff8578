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

// CreateMenuItemUseCase inserta un ítem y sus vínculos de ingredientes de forma atómica.
type CreateMenuItemUseCase struct {
	txRunner TxRunner
}

// NewCreateMenuItemUseCase construye el caso de uso.
func NewCreateMenuItemUseCase(txRunner TxRunner) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{txRunner: txRunner}
}

// Create inserta el ítem y luego cada ingrediente. Un ingrediente inexistente
// (domain.ErrInvalidReference) revierte también el ítem. Restaurante inexistente o
// inactivo: domain.ErrRestaurantNotFound.
func (uc *CreateMenuItemUseCase) Create(ctx context.Context, restaurantID int64, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if restaurantID <= 0 {
		return nil, fmt.Errorf("%w: restaurantId inválido", domain.ErrInvalidInput)
	}
	item := &entity.MenuItem{
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        in.Price,
		Ingredients:  make([]entity.IngredientLink, 0, len(in.Ingredients)),
	}
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if item.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	for i, ing := range in.Ingredients {
		if ing.IngredientID <= 0 {
			return nil, fmt.Errorf("%w: ingredients[%d].ingredientId inválido", domain.ErrInvalidInput, i)
		}
		if ing.Quantity.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: ingredients[%d].quantity no puede ser negativa", domain.ErrInvalidInput, i)
		}
	}

	err := uc.txRunner.Run(ctx, func(restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuRepository) error {
		rest, err := restaurantRepo.GetByID(ctx, restaurantID)
		if err != nil {
			return err
		}
		if rest == nil {
			return domain.ErrRestaurantNotFound
		}
		if err := menuRepo.CreateItem(ctx, item); err != nil {
			return err
		}
		for _, ing := range in.Ingredients {
			link := entity.IngredientLink{
				MenuItemID:   item.ID,
				IngredientID: ing.IngredientID,
				Quantity:     ing.Quantity,
				Notes:        strings.TrimSpace(ing.Notes),
			}
			if err := menuRepo.AddIngredient(ctx, &link); err != nil {
				return err
			}
			item.Ingredients = append(item.Ingredients, link)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.FromMenuItem(item)
	return &out, nil
}
