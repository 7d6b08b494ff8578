package entity

// RestaurantEmployee asignación de un usuario al personal de un restaurante con una función.
type RestaurantEmployee struct {
	ID           int64
	RestaurantID int64
	UserID       int64
	Role         Role
	User         *User // resumen (id, nombre, email) en listados
}
