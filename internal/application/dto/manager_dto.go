package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest PATCH de configuración: los campos nil no se modifican.
type UpdateSettingsRequest struct {
	TradeName            *string          `json:"tradeName"`
	Description          *string          `json:"description"`
	MainCategory         *string          `json:"mainCategory"`
	AllowsPayBefore      *bool            `json:"allowsPayBefore"`
	AllowsPayAfter       *bool            `json:"allowsPayAfter"`
	AllowsBoth           *bool            `json:"allowsBoth"`
	PaidTableReservation *bool            `json:"paidTableReservation"`
	FreeTableReservation *bool            `json:"freeTableReservation"`
	ServiceFeePercent    *decimal.Decimal `json:"serviceFeePercent"`
}

// UnmarshalJSON acepta también las claves heredadas reserva_mesa_paga, reserva_mesa_gratis y
// taxa_servico_percentual. Si llegan ambas formas, gana la clave camelCase.
func (r *UpdateSettingsRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateSettingsRequest
	var aux struct {
		plain
		ReservaMesaPaga       *bool            `json:"reserva_mesa_paga"`
		ReservaMesaGratis     *bool            `json:"reserva_mesa_gratis"`
		TaxaServicoPercentual *decimal.Decimal `json:"taxa_servico_percentual"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = UpdateSettingsRequest(aux.plain)
	if r.PaidTableReservation == nil {
		r.PaidTableReservation = aux.ReservaMesaPaga
	}
	if r.FreeTableReservation == nil {
		r.FreeTableReservation = aux.ReservaMesaGratis
	}
	if r.ServiceFeePercent == nil {
		r.ServiceFeePercent = aux.TaxaServicoPercentual
	}
	return nil
}

// AddStaffRequest asigna un usuario al personal con una función (GARCOM, GERENTE, COZINHA, BAR).
type AddStaffRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=GERENTE GARCOM COZINHA BAR"`
}

// StaffUser resumen del usuario en el listado de personal.
type StaffUser struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// StaffResponse salida de una asignación de personal.
type StaffResponse struct {
	ID           int64      `json:"id"`
	RestaurantID int64      `json:"restaurantId"`
	UserID       int64      `json:"userId"`
	Role         string     `json:"role"`
	User         *StaffUser `json:"user,omitempty"`
}

// IngredientInput ingrediente a vincular al crear un ítem del menú.
type IngredientInput struct {
	IngredientID int64           `json:"ingredientId" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Notes        string          `json:"notes"`
}

// CreateMenuItemRequest entrada para crear un ítem del menú con sus ingredientes.
type CreateMenuItemRequest struct {
	Name        string            `json:"name" validate:"required,max=200"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// IngredientResponse ingrediente de referencia.
type IngredientResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`
}

// IngredientLinkResponse vínculo ítem-ingrediente.
type IngredientLinkResponse struct {
	ID           int64               `json:"id"`
	IngredientID int64               `json:"ingredientId"`
	Quantity     decimal.Decimal     `json:"quantity"`
	Notes        string              `json:"notes,omitempty"`
	Ingredient   *IngredientResponse `json:"ingredient,omitempty"`
}

// MenuItemResponse salida de un ítem del menú.
type MenuItemResponse struct {
	ID           int64                    `json:"id"`
	RestaurantID int64                    `json:"restaurantId"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Price        decimal.Decimal          `json:"price"`
	Ingredients  []IngredientLinkResponse `json:"ingredients"`
}

// CreateTableRequest entrada para crear una mesa.
type CreateTableRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
}

// TableResponse salida de una mesa.
type TableResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurantId"`
	Identifier   string `json:"identifier"`
	Capacity     int    `json:"capacity"`
}
