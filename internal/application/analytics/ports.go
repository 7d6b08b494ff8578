package analytics

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

// Localizer resuelve el idioma de presentación y traduce nombres de días y etiquetas.
type Localizer interface {
	Match(prefs ...string) language.Tag
	Weekday(tag language.Tag, d time.Weekday) string
	Localize(tag language.Tag, id string) string
}

// ReportGenerator genera el PDF del reporte de analítica.
type ReportGenerator interface {
	GenerateAnalyticsPDF(ctx context.Context, report *Report) ([]byte, error)
}

// Report datos ya localizados que se pintan en el PDF.
type Report struct {
	RestaurantName string
	GeneratedAt    time.Time
	Labels         ReportLabels
	TopItems       []dto.TopItemDTO
	BusyDays       []DayCount // de domingo a sábado, solo días con sesiones
}

// ReportLabels textos traducidos del reporte.
type ReportLabels struct {
	Title       string
	Restaurant  string
	GeneratedAt string
	TopItems    string
	BusyDays    string
	Item        string
	Count       string
	Day         string
	Sessions    string
	Empty       string
}

// DayCount sesiones de un día ya traducido.
type DayCount struct {
	Day   string
	Count int64
}
