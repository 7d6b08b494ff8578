package dto

// TopItemDTO ítem del menú con su cantidad de pedidos.
type TopItemDTO struct {
	MenuItemID int64  `json:"menuItemId"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

// AnalyticsDTO salida de GET /manager/:restaurantId/analytics.
// BusyDays usa como clave el nombre localizado del día (p.ej. "sexta-feira").
type AnalyticsDTO struct {
	RestaurantID int64            `json:"restaurantId"`
	TopItems     []TopItemDTO     `json:"topItems"`
	BusyDays     map[string]int64 `json:"busyDays"`
	Locale       string           `json:"locale"`
	Timezone     string           `json:"timezone"`
}
