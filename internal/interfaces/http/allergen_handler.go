package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/usecase"
)

// AllergenHandler catálogo de alérgenos.
type AllergenHandler struct {
	uc *usecase.AllergenUseCase
}

// NewAllergenHandler construye el handler.
func NewAllergenHandler(uc *usecase.AllergenUseCase) *AllergenHandler {
	return &AllergenHandler{uc: uc}
}

// List godoc
// @Summary      Listar alérgenos
// @Tags         allergens
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.AllergenResponse}
// @Router       /api/allergens [get]
func (h *AllergenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}
