package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

// memUsers UserRepository en memoria.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.byID {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.byID {
		if x.Email == email {
			cp := *x
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x, ok := m.byID[id]; ok && x.Active {
		cp := *x
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) ListActive(_ context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.User
	for _, x := range m.byID {
		if x.Active {
			cp := *x
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memUsers) AssignRole(_ context.Context, userID int64, role entity.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	roles := entity.RoleSet{}
	for r := range u.Roles {
		roles[r] = struct{}{}
	}
	roles[role] = struct{}{}
	u.Roles = roles
	return nil
}

// noRestaurants RestaurantRepository vacío: toda búsqueda es un miss.
type noRestaurants struct{}

func (noRestaurants) Create(context.Context, *entity.Restaurant) error                 { return nil }
func (noRestaurants) CreatePaymentConfig(context.Context, *entity.PaymentConfig) error { return nil }
func (noRestaurants) GetByID(context.Context, int64) (*entity.Restaurant, error)       { return nil, nil }
func (noRestaurants) GetForUpdate(context.Context, int64) (*entity.Restaurant, error)  { return nil, nil }
func (noRestaurants) ListActive(context.Context) ([]*entity.Restaurant, error)         { return nil, nil }
func (noRestaurants) UpdateDetails(context.Context, int64, entity.RestaurantDetails) error {
	return domain.ErrRestaurantNotFound
}
func (noRestaurants) UpdatePaymentConfig(context.Context, *entity.PaymentConfig) error {
	return domain.ErrRestaurantNotFound
}

type noTables struct{}

func (noTables) Create(context.Context, *entity.Table) error { return nil }
func (noTables) ListByRestaurant(context.Context, int64) ([]entity.Table, error) {
	return nil, nil
}
func (noTables) ListByRestaurants(context.Context, []int64) (map[int64][]entity.Table, error) {
	return map[int64][]entity.Table{}, nil
}

type noMenu struct{}

func (noMenu) CreateItem(context.Context, *entity.MenuItem) error                 { return nil }
func (noMenu) AddIngredient(context.Context, *entity.IngredientLink) error        { return nil }
func (noMenu) ListByRestaurant(context.Context, int64) ([]entity.MenuItem, error) { return nil, nil }
