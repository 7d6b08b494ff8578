package usecase

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// RestaurantUseCase lecturas públicas de restaurantes.
type RestaurantUseCase struct {
	restaurantRepo repository.RestaurantRepository
	tableRepo      repository.TableRepository
	menuRepo       repository.MenuRepository
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(
	restaurantRepo repository.RestaurantRepository,
	tableRepo repository.TableRepository,
	menuRepo repository.MenuRepository,
) *RestaurantUseCase {
	return &RestaurantUseCase{restaurantRepo: restaurantRepo, tableRepo: tableRepo, menuRepo: menuRepo}
}

// ListActive devuelve los restaurantes activos con configuración de pago y mesas.
func (uc *RestaurantUseCase) ListActive(ctx context.Context) ([]dto.RestaurantResponse, error) {
	list, err := uc.restaurantRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	tables, err := uc.tableRepo.ListByRestaurants(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		r.Tables = tables[r.ID]
		out = append(out, dto.FromRestaurant(r))
	}
	return out, nil
}

// GetByID devuelve el restaurante con configuración, mesas y cardápio.
// domain.ErrRestaurantNotFound si no existe o está inactivo.
func (uc *RestaurantUseCase) GetByID(ctx context.Context, id int64) (*dto.RestaurantDetailResponse, error) {
	rest, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	if rest.Tables, err = uc.tableRepo.ListByRestaurant(ctx, id); err != nil {
		return nil, err
	}
	if rest.MenuItems, err = uc.menuRepo.ListByRestaurant(ctx, id); err != nil {
		return nil, err
	}
	out := dto.FromRestaurantDetail(rest)
	return &out, nil
}
