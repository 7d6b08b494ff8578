package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// AnalyticsHandler analítica de pedidos y sesiones del restaurante.
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Get godoc
// @Summary      Top 5 ítems más pedidos y sesiones por día de la semana
// @Description  Los días se nombran en el idioma pedido (?locale= o Accept-Language; pt-BR, es, en)
// @Description  y se calculan en la zona horaria configurada.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        restaurantId  path   int     true   "ID del restaurante"
// @Param        locale        query  string  false  "Idioma de los nombres de días (pt-BR, es, en)"
// @Success      200  {object}  dto.Envelope{data=dto.AnalyticsDTO}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/analytics [get]
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	out, err := h.uc.GetAnalytics(c.UserContext(), id, localePrefs(c)...)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// ReportPDF godoc
// @Summary      Reporte de analítica en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        restaurantId  path   int     true   "ID del restaurante"
// @Param        locale        query  string  false  "Idioma del reporte (pt-BR, es, en)"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{restaurantId}/analytics/report.pdf [get]
func (h *AnalyticsHandler) ReportPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "restaurantId")
	if err != nil {
		return err
	}
	pdf, filename, err := h.uc.ReportPDF(c.UserContext(), id, localePrefs(c)...)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
