package restaurant

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var errBoom = errors.New("falla simulada de la base de datos")

// memState estado en memoria que imita las tablas usadas por las transacciones.
type memState struct {
	nextID      int64
	restaurants map[int64]entity.Restaurant
	configs     map[int64]entity.PaymentConfig
	items       map[int64]entity.MenuItem
	links       map[int64]entity.IngredientLink
	ingredients map[int64]bool
}

func newMemState() *memState {
	return &memState{
		restaurants: map[int64]entity.Restaurant{},
		configs:     map[int64]entity.PaymentConfig{},
		items:       map[int64]entity.MenuItem{},
		links:       map[int64]entity.IngredientLink{},
		ingredients: map[int64]bool{},
	}
}

func (s *memState) clone() *memState {
	c := &memState{
		nextID:      s.nextID,
		restaurants: make(map[int64]entity.Restaurant, len(s.restaurants)),
		configs:     make(map[int64]entity.PaymentConfig, len(s.configs)),
		items:       make(map[int64]entity.MenuItem, len(s.items)),
		links:       make(map[int64]entity.IngredientLink, len(s.links)),
		ingredients: make(map[int64]bool, len(s.ingredients)),
	}
	for k, v := range s.restaurants {
		c.restaurants[k] = v
	}
	for k, v := range s.configs {
		c.configs[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	for k, v := range s.ingredients {
		c.ingredients[k] = v
	}
	return c
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

// fakeTxRunner aplica las escrituras sobre una copia y solo la publica si fn no falla.
type fakeTxRunner struct {
	mu        sync.Mutex
	state     *memState
	failOn    string
	runs      int
	commits   int
	rollbacks int
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{state: newMemState()}
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.RestaurantRepository, repository.MenuRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	staged := f.state.clone()
	repos := &txRepos{s: staged, failOn: f.failOn}
	if err := fn(repos, repos); err != nil {
		f.rollbacks++
		return err
	}
	f.state = staged
	f.commits++
	return nil
}

// seedRestaurant inserta un restaurante activo con configuración por defecto fuera de toda tx.
func (f *fakeTxRunner) seedRestaurant(name string) int64 {
	id := f.state.id()
	f.state.restaurants[id] = entity.Restaurant{ID: id, TradeName: name, CNPJ: "00.000.000/0001-00", MainCategory: "Italiana", City: "São Paulo", State: "SP", Active: true}
	f.state.configs[id] = *entity.DefaultPaymentConfig(id)
	return id
}

func (f *fakeTxRunner) seedIngredient() int64 {
	id := f.state.id()
	f.state.ingredients[id] = true
	return id
}

// txRepos implementa RestaurantRepository y MenuRepository sobre el estado en preparación.
type txRepos struct {
	s      *memState
	failOn string
}

var (
	_ repository.RestaurantRepository = (*txRepos)(nil)
	_ repository.MenuRepository       = (*txRepos)(nil)
)

func (r *txRepos) fail(op string) error {
	if r.failOn == op {
		return errBoom
	}
	return nil
}

func (r *txRepos) Create(_ context.Context, rest *entity.Restaurant) error {
	if err := r.fail("Create"); err != nil {
		return err
	}
	rest.ID = r.s.id()
	r.s.restaurants[rest.ID] = *rest
	return nil
}

func (r *txRepos) CreatePaymentConfig(_ context.Context, cfg *entity.PaymentConfig) error {
	if err := r.fail("CreatePaymentConfig"); err != nil {
		return err
	}
	if _, ok := r.s.restaurants[cfg.RestaurantID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	r.s.configs[cfg.RestaurantID] = *cfg
	return nil
}

func (r *txRepos) GetByID(_ context.Context, id int64) (*entity.Restaurant, error) {
	rest, ok := r.s.restaurants[id]
	if !ok || !rest.Active {
		return nil, nil
	}
	if cfg, ok := r.s.configs[id]; ok {
		rest.PaymentConfig = &cfg
	}
	return &rest, nil
}

func (r *txRepos) GetForUpdate(ctx context.Context, id int64) (*entity.Restaurant, error) {
	return r.GetByID(ctx, id)
}

func (r *txRepos) ListActive(ctx context.Context) ([]*entity.Restaurant, error) {
	ids := make([]int64, 0, len(r.s.restaurants))
	for id := range r.s.restaurants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*entity.Restaurant
	for _, id := range ids {
		if rest, _ := r.GetByID(ctx, id); rest != nil {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *txRepos) UpdateDetails(_ context.Context, id int64, d entity.RestaurantDetails) error {
	if err := r.fail("UpdateDetails"); err != nil {
		return err
	}
	rest, ok := r.s.restaurants[id]
	if !ok {
		return domain.ErrRestaurantNotFound
	}
	rest.TradeName, rest.Description, rest.MainCategory = d.TradeName, d.Description, d.MainCategory
	r.s.restaurants[id] = rest
	return nil
}

func (r *txRepos) UpdatePaymentConfig(_ context.Context, cfg *entity.PaymentConfig) error {
	if err := r.fail("UpdatePaymentConfig"); err != nil {
		return err
	}
	if _, ok := r.s.configs[cfg.RestaurantID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	r.s.configs[cfg.RestaurantID] = *cfg
	return nil
}

func (r *txRepos) CreateItem(_ context.Context, item *entity.MenuItem) error {
	if err := r.fail("CreateItem"); err != nil {
		return err
	}
	if _, ok := r.s.restaurants[item.RestaurantID]; !ok {
		return domain.ErrRestaurantNotFound
	}
	item.ID = r.s.id()
	stored := *item
	stored.Ingredients = nil
	r.s.items[item.ID] = stored
	return nil
}

func (r *txRepos) AddIngredient(_ context.Context, link *entity.IngredientLink) error {
	if !r.s.ingredients[link.IngredientID] {
		return domain.ErrInvalidReference
	}
	link.ID = r.s.id()
	r.s.links[link.ID] = *link
	return nil
}

func (r *txRepos) ListByRestaurant(_ context.Context, restaurantID int64) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, it := range r.s.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out, nil
}
