// Package analytics contiene los casos de uso de analítica del restaurante:
// ítems más pedidos y sesiones por día de la semana (JSON y PDF).
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

const topItemsLimit = 5 // número de ítems en el ranking

// Options zona horaria para agrupar por día y locale por defecto.
type Options struct {
	Location      *time.Location
	DefaultLocale string
}

// AnalyticsUseCase agrega datos de sesiones y pedidos. Solo lectura, sin transacción.
type AnalyticsUseCase struct {
	analyticsRepo  repository.AnalyticsRepository
	restaurantRepo repository.RestaurantRepository
	localizer      Localizer
	reports        ReportGenerator
	loc            *time.Location
	defaultLocale  string
	now            func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	restaurantRepo repository.RestaurantRepository,
	localizer Localizer,
	reports ReportGenerator,
	opts Options,
) *AnalyticsUseCase {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsUseCase{
		analyticsRepo:  analyticsRepo,
		restaurantRepo: restaurantRepo,
		localizer:      localizer,
		reports:        reports,
		loc:            loc,
		defaultLocale:  opts.DefaultLocale,
		now:            time.Now,
	}
}

type aggregates struct {
	top      []entity.TopMenuItem
	weekdays []entity.WeekdayCount
}

// collect ejecuta las dos consultas independientes en paralelo.
func (uc *AnalyticsUseCase) collect(ctx context.Context, restaurantID int64) (*aggregates, error) {
	type topResult struct {
		items []entity.TopMenuItem
		err   error
	}
	type daysResult struct {
		days []entity.WeekdayCount
		err  error
	}

	topCh := make(chan topResult, 1)
	daysCh := make(chan daysResult, 1)

	go func() {
		items, err := uc.analyticsRepo.TopMenuItems(ctx, restaurantID, topItemsLimit)
		topCh <- topResult{items, err}
	}()
	go func() {
		days, err := uc.analyticsRepo.SessionsByWeekday(ctx, restaurantID, uc.loc)
		daysCh <- daysResult{days, err}
	}()

	top := <-topCh
	days := <-daysCh

	if top.err != nil {
		return nil, fmt.Errorf("analytics: top ítems: %w", top.err)
	}
	if days.err != nil {
		return nil, fmt.Errorf("analytics: sesiones por día: %w", days.err)
	}
	return &aggregates{top: top.items, weekdays: days.days}, nil
}

// pickLanguage elige el idioma: preferencias del request y luego el locale configurado.
func (uc *AnalyticsUseCase) pickLanguage(prefs []string) language.Tag {
	all := make([]string, 0, len(prefs)+1)
	all = append(all, prefs...)
	return uc.localizer.Match(append(all, uc.defaultLocale)...)
}

func (uc *AnalyticsUseCase) restaurant(ctx context.Context, id int64) (*entity.Restaurant, error) {
	rest, err := uc.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return rest, nil
}

// GetAnalytics devuelve el top 5 de ítems y el conteo de sesiones por día localizado.
// Un restaurante sin sesiones produce listas vacías, no un error; uno inexistente,
// domain.ErrRestaurantNotFound.
func (uc *AnalyticsUseCase) GetAnalytics(ctx context.Context, restaurantID int64, localePrefs ...string) (*dto.AnalyticsDTO, error) {
	if _, err := uc.restaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	agg, err := uc.collect(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	tag := uc.pickLanguage(localePrefs)

	busy := make(map[string]int64, len(agg.weekdays))
	for _, d := range agg.weekdays {
		busy[uc.localizer.Weekday(tag, d.Weekday)] += d.Count
	}
	return &dto.AnalyticsDTO{
		RestaurantID: restaurantID,
		TopItems:     toTopItems(agg.top),
		BusyDays:     busy,
		Locale:       tag.String(),
		Timezone:     uc.loc.String(),
	}, nil
}

// ReportPDF genera el reporte PDF del restaurante. domain.ErrRestaurantNotFound si no existe.
func (uc *AnalyticsUseCase) ReportPDF(ctx context.Context, restaurantID int64, localePrefs ...string) ([]byte, string, error) {
	rest, err := uc.restaurant(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}
	agg, err := uc.collect(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}
	tag := uc.pickLanguage(localePrefs)

	days := make([]DayCount, 0, len(agg.weekdays))
	for d := time.Sunday; d <= time.Saturday; d++ {
		for _, w := range agg.weekdays {
			if w.Weekday == d {
				days = append(days, DayCount{Day: uc.localizer.Weekday(tag, d), Count: w.Count})
			}
		}
	}

	report := &Report{
		RestaurantName: rest.TradeName,
		GeneratedAt:    uc.now().In(uc.loc),
		Labels:         uc.labels(tag),
		TopItems:       toTopItems(agg.top),
		BusyDays:       days,
	}
	pdf, err := uc.reports.GenerateAnalyticsPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("analytics: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("analytics-%d-%s.pdf", restaurantID, report.GeneratedAt.Format("20060102"))
	return pdf, filename, nil
}

func (uc *AnalyticsUseCase) labels(tag language.Tag) ReportLabels {
	l := func(id string) string { return uc.localizer.Localize(tag, id) }
	return ReportLabels{
		Title:       l("report_title"),
		Restaurant:  l("report_restaurant"),
		GeneratedAt: l("report_generated_at"),
		TopItems:    l("report_top_items"),
		BusyDays:    l("report_busy_days"),
		Item:        l("report_item"),
		Count:       l("report_count"),
		Day:         l("report_day"),
		Sessions:    l("report_sessions"),
		Empty:       l("report_empty"),
	}
}

func toTopItems(items []entity.TopMenuItem) []dto.TopItemDTO {
	out := make([]dto.TopItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TopItemDTO{MenuItemID: it.MenuItemID, Name: it.Name, Count: it.Count})
	}
	return out
}
