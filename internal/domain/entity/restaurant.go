package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant representa un restaurante. Es dueño de su PaymentConfig (1:1), mesas y ítems de menú.
type Restaurant struct {
	ID            int64
	TradeName     string // nombre fantasía
	CompanyName   string // razón social
	CNPJ          string
	Description   string
	MainCategory  string
	City          string
	State         string
	Active        bool
	PaymentConfig *PaymentConfig
	Tables        []Table
	MenuItems     []MenuItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaymentConfig política de pago y reservas del restaurante. Existe exactamente una por restaurante.
type PaymentConfig struct {
	RestaurantID         int64
	AllowsPayBefore      bool
	AllowsPayAfter       bool
	AllowsBoth           bool
	PaidTableReservation bool
	FreeTableReservation bool
	ServiceFeePercent    decimal.Decimal // 0..100, admite fracciones
}

// MaxServiceFeePercent tope de la tasa de servicio.
var MaxServiceFeePercent = decimal.NewFromInt(100)

// DefaultPaymentConfig configuración creada junto con el restaurante:
// pago al final de la comida, sin reservas y 10% de tasa de servicio.
func DefaultPaymentConfig(restaurantID int64) *PaymentConfig {
	return &PaymentConfig{
		RestaurantID:      restaurantID,
		AllowsPayAfter:    true,
		ServiceFeePercent: decimal.NewFromInt(10),
	}
}

// RestaurantDetails campos descriptivos editables desde la configuración del gerente.
type RestaurantDetails struct {
	TradeName    string
	Description  string
	MainCategory string
}
