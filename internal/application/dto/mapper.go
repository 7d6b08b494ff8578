package dto

import "github.com/jhoicas/Restaurante-api/internal/domain/entity"

// FromUser convierte la entidad en su salida pública (sin hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Roles:    u.Roles.Names(),
	}
}

// FromPaymentConfig devuelve nil si el restaurante no tiene configuración cargada.
func FromPaymentConfig(c *entity.PaymentConfig) *PaymentConfigResponse {
	if c == nil {
		return nil
	}
	return &PaymentConfigResponse{
		AllowsPayBefore:      c.AllowsPayBefore,
		AllowsPayAfter:       c.AllowsPayAfter,
		AllowsBoth:           c.AllowsBoth,
		PaidTableReservation: c.PaidTableReservation,
		FreeTableReservation: c.FreeTableReservation,
		ServiceFeePercent:    c.ServiceFeePercent,
	}
}

// FromTable convierte una mesa.
func FromTable(t entity.Table) TableResponse {
	return TableResponse{ID: t.ID, RestaurantID: t.RestaurantID, Identifier: t.Identifier, Capacity: t.Capacity}
}

// FromRestaurant incluye configuración y mesas; Tables nunca es nil en la salida.
func FromRestaurant(r *entity.Restaurant) RestaurantResponse {
	tables := make([]TableResponse, 0, len(r.Tables))
	for _, t := range r.Tables {
		tables = append(tables, FromTable(t))
	}
	return RestaurantResponse{
		ID:            r.ID,
		TradeName:     r.TradeName,
		CompanyName:   r.CompanyName,
		CNPJ:          r.CNPJ,
		Description:   r.Description,
		MainCategory:  r.MainCategory,
		City:          r.City,
		State:         r.State,
		Active:        r.Active,
		PaymentConfig: FromPaymentConfig(r.PaymentConfig),
		Tables:        tables,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromRestaurantDetail agrega el cardápio a la salida del restaurante.
func FromRestaurantDetail(r *entity.Restaurant) RestaurantDetailResponse {
	items := make([]MenuItemResponse, 0, len(r.MenuItems))
	for i := range r.MenuItems {
		items = append(items, FromMenuItem(&r.MenuItems[i]))
	}
	return RestaurantDetailResponse{RestaurantResponse: FromRestaurant(r), MenuItems: items}
}

// FromMenuItem convierte un ítem con sus vínculos de ingredientes.
func FromMenuItem(m *entity.MenuItem) MenuItemResponse {
	links := make([]IngredientLinkResponse, 0, len(m.Ingredients))
	for _, l := range m.Ingredients {
		lr := IngredientLinkResponse{
			ID:           l.ID,
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Notes:        l.Notes,
		}
		if l.Ingredient != nil {
			lr.Ingredient = &IngredientResponse{ID: l.Ingredient.ID, Name: l.Ingredient.Name, Unit: l.Ingredient.Unit}
		}
		links = append(links, lr)
	}
	return MenuItemResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
		Ingredients:  links,
	}
}

// FromEmployee convierte una asignación de personal.
func FromEmployee(e *entity.RestaurantEmployee) StaffResponse {
	out := StaffResponse{ID: e.ID, RestaurantID: e.RestaurantID, UserID: e.UserID, Role: string(e.Role)}
	if e.User != nil {
		out.User = &StaffUser{ID: e.User.ID, FullName: e.User.FullName, Email: e.User.Email}
	}
	return out
}

// FromAllergen convierte un alérgeno.
func FromAllergen(a entity.Allergen) AllergenResponse {
	return AllergenResponse{ID: a.ID, Name: a.Name, Description: a.Description}
}
