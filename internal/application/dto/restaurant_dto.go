package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRestaurantRequest entrada para registrar un restaurante.
type CreateRestaurantRequest struct {
	TradeName    string `json:"tradeName" validate:"required,max=200"`
	CompanyName  string `json:"companyName"`
	CNPJ         string `json:"cnpj" validate:"required"`
	Description  string `json:"description"`
	MainCategory string `json:"mainCategory" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
}

// PaymentConfigResponse política de pago del restaurante.
type PaymentConfigResponse struct {
	AllowsPayBefore      bool            `json:"allowsPayBefore"`
	AllowsPayAfter       bool            `json:"allowsPayAfter"`
	AllowsBoth           bool            `json:"allowsBoth"`
	PaidTableReservation bool            `json:"paidTableReservation"`
	FreeTableReservation bool            `json:"freeTableReservation"`
	ServiceFeePercent    decimal.Decimal `json:"serviceFeePercent"`
}

// RestaurantResponse salida de un restaurante con su configuración y mesas.
type RestaurantResponse struct {
	ID            int64                  `json:"id"`
	TradeName     string                 `json:"tradeName"`
	CompanyName   string                 `json:"companyName"`
	CNPJ          string                 `json:"cnpj"`
	Description   string                 `json:"description"`
	MainCategory  string                 `json:"mainCategory"`
	City          string                 `json:"city"`
	State         string                 `json:"state"`
	Active        bool                   `json:"active"`
	PaymentConfig *PaymentConfigResponse `json:"paymentConfig"`
	Tables        []TableResponse        `json:"tables"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// RestaurantDetailResponse detalle con el cardápio (GET /restaurants/:id).
type RestaurantDetailResponse struct {
	RestaurantResponse
	MenuItems []MenuItemResponse `json:"menuItems"`
}

// AllergenResponse salida de un alérgeno.
type AllergenResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
