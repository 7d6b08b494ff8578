package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// ManagerUseCase operaciones simples del gerente: personal, mesas y lectura del cardápio.
// Las escrituras atómicas (configuración, ítems con ingredientes) viven en application/restaurant.
type ManagerUseCase struct {
	restaurantRepo repository.RestaurantRepository
	staffRepo      repository.StaffRepository
	tableRepo      repository.TableRepository
	menuRepo       repository.MenuRepository
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(
	restaurantRepo repository.RestaurantRepository,
	staffRepo repository.StaffRepository,
	tableRepo repository.TableRepository,
	menuRepo repository.MenuRepository,
) *ManagerUseCase {
	return &ManagerUseCase{restaurantRepo: restaurantRepo, staffRepo: staffRepo, tableRepo: tableRepo, menuRepo: menuRepo}
}

// requireActive falla con domain.ErrRestaurantNotFound si el restaurante no existe o está inactivo.
func (uc *ManagerUseCase) requireActive(ctx context.Context, restaurantID int64) error {
	rest, err := uc.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if rest == nil {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// AddStaff asigna un usuario al personal del restaurante con una función conocida.
// Restaurantes inactivos no admiten altas.
func (uc *ManagerUseCase) AddStaff(ctx context.Context, restaurantID int64, in dto.AddStaffRequest) (*dto.StaffResponse, error) {
	if in.UserID <= 0 {
		return nil, fmt.Errorf("%w: userId inválido", domain.ErrInvalidInput)
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, fmt.Errorf("%w: role debe ser GERENTE, GARCOM, COZINHA o BAR", domain.ErrInvalidInput)
	}
	if err := uc.requireActive(ctx, restaurantID); err != nil {
		return nil, err
	}
	e := &entity.RestaurantEmployee{RestaurantID: restaurantID, UserID: in.UserID, Role: role}
	if err := uc.staffRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	out := dto.FromEmployee(e)
	return &out, nil
}

// ListStaff lista el personal del restaurante.
func (uc *ManagerUseCase) ListStaff(ctx context.Context, restaurantID int64) ([]dto.StaffResponse, error) {
	list, err := uc.staffRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromEmployee(&list[i]))
	}
	return out, nil
}

// CreateTable crea una mesa con capacidad positiva en un restaurante activo.
func (uc *ManagerUseCase) CreateTable(ctx context.Context, restaurantID int64, in dto.CreateTableRequest) (*dto.TableResponse, error) {
	t := &entity.Table{RestaurantID: restaurantID, Identifier: strings.TrimSpace(in.Identifier), Capacity: in.Capacity}
	if t.Identifier == "" {
		return nil, fmt.Errorf("%w: identifier es obligatorio", domain.ErrInvalidInput)
	}
	if t.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if err := uc.requireActive(ctx, restaurantID); err != nil {
		return nil, err
	}
	if err := uc.tableRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := dto.FromTable(*t)
	return &out, nil
}

// ListMenu lista los ítems del cardápio con sus ingredientes.
func (uc *ManagerUseCase) ListMenu(ctx context.Context, restaurantID int64) ([]dto.MenuItemResponse, error) {
	items, err := uc.menuRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.FromMenuItem(&items[i]))
	}
	return out, nil
}
