package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

const (
	constraintMenuItemRestaurant = "fk_cardapio_itens_restaurante"
	constraintLinkIngredient     = "fk_itens_ingredientes_ingrediente"
)

// MenuRepo implementación de MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	db Querier
}

// NewMenuRepository construye el repositorio del cardápio.
func NewMenuRepository(db Querier) *MenuRepo {
	return &MenuRepo{db: db}
}

// CreateItem inserta un ítem del cardápio y completa su ID.
func (r *MenuRepo) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO cardapio_itens (id_restaurante, nome, descricao, preco)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id_item`
	err := r.db.QueryRow(ctx, query, item.RestaurantID, item.Name, item.Description, item.Price).Scan(&item.ID)
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok && c == constraintMenuItemRestaurant {
			return domain.ErrRestaurantNotFound
		}
		if isCheckViolation(err) {
			return fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// AddIngredient vincula un ingrediente al ítem.
func (r *MenuRepo) AddIngredient(ctx context.Context, link *entity.IngredientLink) error {
	query := `
		INSERT INTO cardapio_itens_ingredientes (id_item, id_ingrediente, quantidade, observacoes)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id_item_ingrediente`
	err := r.db.QueryRow(ctx, query, link.MenuItemID, link.IngredientID, link.Quantity, link.Notes).Scan(&link.ID)
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == constraintLinkIngredient {
				return fmt.Errorf("ingrediente %d: %w", link.IngredientID, domain.ErrInvalidReference)
			}
			return fmt.Errorf("ítem %d: %w", link.MenuItemID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert ingredient link: %w", err)
	}
	return nil
}

// ListByRestaurant lista los ítems con sus ingredientes (dos consultas, sin N+1).
func (r *MenuRepo) ListByRestaurant(ctx context.Context, restaurantID int64) ([]entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_item, id_restaurante, nome, COALESCE(descricao, ''), preco
		FROM cardapio_itens WHERE id_restaurante = $1
		ORDER BY id_item`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]entity.MenuItem, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var it entity.MenuItem
		if err := rows.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		it.Ingredients = []entity.IngredientLink{}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	if len(items) == 0 {
		return items, nil
	}

	linkRows, err := r.db.Query(ctx, `
		SELECT l.id_item_ingrediente, l.id_item, l.id_ingrediente, COALESCE(l.quantidade, 0), COALESCE(l.observacoes, ''),
		       i.nome, COALESCE(i.unidade_medida, '')
		FROM cardapio_itens_ingredientes l
		JOIN cardapio_itens m ON m.id_item = l.id_item
		JOIN ingredientes i ON i.id_ingrediente = l.id_ingrediente
		WHERE m.id_restaurante = $1
		ORDER BY l.id_item, l.id_item_ingrediente`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list ingredient links: %w", err)
	}
	defer linkRows.Close()
	for linkRows.Next() {
		var l entity.IngredientLink
		ing := &entity.Ingredient{}
		if err := linkRows.Scan(&l.ID, &l.MenuItemID, &l.IngredientID, &l.Quantity, &l.Notes, &ing.Name, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan ingredient link: %w", err)
		}
		ing.ID = l.IngredientID
		l.Ingredient = ing
		if pos, ok := index[l.MenuItemID]; ok {
			items[pos].Ingredients = append(items[pos].Ingredients, l)
		}
	}
	return items, linkRows.Err()
}
