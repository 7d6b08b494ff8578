package entity

import "github.com/shopspring/decimal"

// MenuItem ítem del cardápio de un restaurante.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Ingredients  []IngredientLink
}

// IngredientLink vínculo de un ítem con un ingrediente (cantidad y observaciones).
type IngredientLink struct {
	ID           int64
	MenuItemID   int64
	IngredientID int64
	Quantity     decimal.Decimal
	Notes        string
	Ingredient   *Ingredient // solo en lecturas
}

// Ingredient dato de referencia, solo lectura.
type Ingredient struct {
	ID   int64
	Name string
	Unit string
}

// Allergen dato de referencia, solo lectura.
type Allergen struct {
	ID          int64
	Name        string
	Description string
}
