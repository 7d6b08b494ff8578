package usecase

import (
	"context"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

type fakeStaffRepo struct {
	restaurants map[int64]bool
	staff       []entity.RestaurantEmployee
}

func (r *fakeStaffRepo) Create(_ context.Context, e *entity.RestaurantEmployee) error {
	if !r.restaurants[e.RestaurantID] {
		return domain.ErrRestaurantNotFound
	}
	for _, s := range r.staff {
		if s.RestaurantID == e.RestaurantID && s.UserID == e.UserID {
			return domain.ErrConflict
		}
	}
	e.ID = int64(len(r.staff) + 1)
	r.staff = append(r.staff, *e)
	return nil
}

func (r *fakeStaffRepo) ListByRestaurant(_ context.Context, restaurantID int64) ([]entity.RestaurantEmployee, error) {
	out := []entity.RestaurantEmployee{}
	for _, s := range r.staff {
		if s.RestaurantID == restaurantID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTableRepo struct {
	tables []entity.Table
}

func (r *fakeTableRepo) Create(_ context.Context, t *entity.Table) error {
	t.ID = int64(len(r.tables) + 1)
	r.tables = append(r.tables, *t)
	return nil
}

func (r *fakeTableRepo) ListByRestaurant(_ context.Context, restaurantID int64) ([]entity.Table, error) {
	out := []entity.Table{}
	for _, t := range r.tables {
		if t.RestaurantID == restaurantID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTableRepo) ListByRestaurants(ctx context.Context, ids []int64) (map[int64][]entity.Table, error) {
	out := map[int64][]entity.Table{}
	for _, id := range ids {
		if ts, _ := r.ListByRestaurant(ctx, id); len(ts) > 0 {
			out[id] = ts
		}
	}
	return out, nil
}

type fakeMenuRepo struct {
	items []entity.MenuItem
}

func (r *fakeMenuRepo) CreateItem(context.Context, *entity.MenuItem) error           { return nil }
func (r *fakeMenuRepo) AddIngredient(context.Context, *entity.IngredientLink) error { return nil }
func (r *fakeMenuRepo) ListByRestaurant(_ context.Context, restaurantID int64) ([]entity.MenuItem, error) {
	out := []entity.MenuItem{}
	for _, it := range r.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeRestaurantRepo struct {
	restaurants []*entity.Restaurant
}

func (r *fakeRestaurantRepo) Create(context.Context, *entity.Restaurant) error              { return nil }
func (r *fakeRestaurantRepo) CreatePaymentConfig(context.Context, *entity.PaymentConfig) error { return nil }
func (r *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == id && rest.Active {
			cp := *rest
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeRestaurantRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Restaurant, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeRestaurantRepo) ListActive(context.Context) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, rest := range r.restaurants {
		if rest.Active {
			cp := *rest
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeRestaurantRepo) UpdateDetails(context.Context, int64, entity.RestaurantDetails) error {
	return nil
}
func (r *fakeRestaurantRepo) UpdatePaymentConfig(context.Context, *entity.PaymentConfig) error {
	return nil
}

type fakeAllergenRepo struct {
	list []entity.Allergen
	err  error
}

func (r *fakeAllergenRepo) List(context.Context) ([]entity.Allergen, error) { return r.list, r.err }
