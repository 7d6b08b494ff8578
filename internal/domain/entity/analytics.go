package entity

import "time"

// TopMenuItem ítem del menú con su cantidad de pedidos.
type TopMenuItem struct {
	MenuItemID int64
	Name       string
	Count      int64
}

// WeekdayCount cantidad de sesiones abiertas en un día de la semana.
type WeekdayCount struct {
	Weekday time.Weekday
	Count   int64
}
