package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/restaurant"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// ManagerHandler operaciones del gerente sobre su restaurante (requiere rol GERENTE).
type ManagerHandler struct {
	uc         *usecase.ManagerUseCase
	settings   *restaurant.UpdateSettingsUseCase
	createItem *restaurant.CreateMenuItemUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(
	uc *usecase.ManagerUseCase,
	settings *restaurant.UpdateSettingsUseCase,
	createItem *restaurant.CreateMenuItemUseCase,
) *ManagerHandler {
	return &ManagerHandler{uc: uc, settings: settings, createItem: createItem}
}

// UpdateSettings godoc
// @Summary      Actualizar datos y configuración de pago (PATCH; campos omitidos no cambian)
// @Tags         manager
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        restaurantId  path  int                        true  "ID del restaurante"
// @Param        body          body  dto.UpdateSettingsRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.Envelope{data=dto.RestaurantResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/settings [patch]
func (h *ManagerHandler) UpdateSettings(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	var in dto.UpdateSettingsRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.settings.UpdateSettings(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKWithMessage(out, "configuración actualizada"))
}

// AddStaff godoc
// @Summary      Asignar un usuario al personal del restaurante
// @Tags         manager
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        restaurantId  path  int                  true  "ID del restaurante"
// @Param        body          body  dto.AddStaffRequest  true  "userId y role (GERENTE, GARCOM, COZINHA, BAR)"
// @Success      201  {object}  dto.Envelope{data=dto.StaffResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/staff [post]
func (h *ManagerHandler) AddStaff(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	var in dto.AddStaffRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.AddStaff(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListStaff godoc
// @Summary      Listar el personal del restaurante
// @Tags         manager
// @Security     Bearer
// @Produce      json
// @Param        restaurantId  path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Envelope{data=[]dto.StaffResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/staff [get]
func (h *ManagerHandler) ListStaff(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	out, err := h.uc.ListStaff(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// CreateMenuItem godoc
// @Summary      Crear ítem del cardápio con sus ingredientes (atómico)
// @Tags         manager
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        restaurantId  path  int                        true  "ID del restaurante"
// @Param        body          body  dto.CreateMenuItemRequest  true  "Ítem e ingredientes"
// @Success      201  {object}  dto.Envelope{data=dto.MenuItemResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/menu [post]
func (h *ManagerHandler) CreateMenuItem(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	var in dto.CreateMenuItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.createItem.Create(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListMenu godoc
// @Summary      Listar ítems del cardápio con ingredientes
// @Tags         manager
// @Security     Bearer
// @Produce      json
// @Param        restaurantId  path  int  true  "ID del restaurante"
// @Success      200  {object}  dto.Envelope{data=[]dto.MenuItemResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/menu [get]
func (h *ManagerHandler) ListMenu(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	out, err := h.uc.ListMenu(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// CreateTable godoc
// @Summary      Crear mesa
// @Tags         manager
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        restaurantId  path  int                     true  "ID del restaurante"
// @Param        body          body  dto.CreateTableRequest  true  "identifier y capacity"
// @Success      201  {object}  dto.Envelope{data=dto.TableResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/tables [post]
func (h *ManagerHandler) CreateTable(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	var in dto.CreateTableRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateTable(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}
