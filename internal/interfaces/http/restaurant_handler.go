package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/restaurant"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// RestaurantHandler alta y consulta de restaurantes.
type RestaurantHandler struct {
	uc     *usecase.RestaurantUseCase
	create *restaurant.CreateRestaurantUseCase
}

// NewRestaurantHandler construye el handler.
func NewRestaurantHandler(uc *usecase.RestaurantUseCase, create *restaurant.CreateRestaurantUseCase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, create: create}
}

// List godoc
// @Summary      Listar restaurantes activos con mesas y configuración de pago
// @Tags         restaurants
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.RestaurantResponse}
// @Router       /api/restaurants [get]
func (h *RestaurantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener restaurante con mesas, cardápio y configuración
// @Tags         restaurants
// @Produce      json
// @Param        id   path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Envelope{data=dto.RestaurantDetailResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/restaurants/{id} [get]
func (h *RestaurantHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Registrar restaurante (crea también su configuración de pago)
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRestaurantRequest  true  "Datos del restaurante"
// @Success      201   {object}  dto.Envelope{data=dto.RestaurantResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/restaurants [post]
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRestaurantRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.create.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKWithMessage(out, "restaurante registrado"))
}
