package entity

// Table mesa física de un restaurante.
type Table struct {
	ID           int64
	RestaurantID int64
	Identifier   string // p.ej. "M01", "Varanda 3"
	Capacity     int
}
