package analytics

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/pkg/i18n"
)

type fakeAnalyticsRepo struct {
	top      []entity.TopMenuItem
	weekdays []entity.WeekdayCount
	topErr   error
	gotLimit int
	gotLoc   *time.Location
}

func (r *fakeAnalyticsRepo) TopMenuItems(_ context.Context, _ int64, limit int) ([]entity.TopMenuItem, error) {
	r.gotLimit = limit
	return r.top, r.topErr
}

func (r *fakeAnalyticsRepo) SessionsByWeekday(_ context.Context, _ int64, loc *time.Location) ([]entity.WeekdayCount, error) {
	r.gotLoc = loc
	return r.weekdays, nil
}

type fakeRestaurantRepo struct {
	entity.Restaurant
	found bool
}

func (r *fakeRestaurantRepo) GetByID(context.Context, int64) (*entity.Restaurant, error) {
	if !r.found {
		return nil, nil
	}
	cp := r.Restaurant
	return &cp, nil
}
func (r *fakeRestaurantRepo) Create(context.Context, *entity.Restaurant) error              { return nil }
func (r *fakeRestaurantRepo) CreatePaymentConfig(context.Context, *entity.PaymentConfig) error { return nil }
func (r *fakeRestaurantRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Restaurant, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeRestaurantRepo) ListActive(context.Context) ([]*entity.Restaurant, error) { return nil, nil }
func (r *fakeRestaurantRepo) UpdateDetails(context.Context, int64, entity.RestaurantDetails) error {
	return nil
}
func (r *fakeRestaurantRepo) UpdatePaymentConfig(context.Context, *entity.PaymentConfig) error {
	return nil
}

type captureReports struct {
	got *Report
}

func (c *captureReports) GenerateAnalyticsPDF(_ context.Context, r *Report) ([]byte, error) {
	c.got = r
	return []byte("%PDF-1.3"), nil
}

func cantina() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{Restaurant: entity.Restaurant{ID: 1, TradeName: "Cantina"}, found: true}
}

func newUseCase(t *testing.T, repo *fakeAnalyticsRepo, rest *fakeRestaurantRepo, reports ReportGenerator) *AnalyticsUseCase {
	t.Helper()
	tr, err := i18n.New()
	require.NoError(t, err)
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return NewAnalyticsUseCase(repo, rest, tr, reports, Options{Location: loc, DefaultLocale: "pt-BR"})
}

func TestGetAnalytics_SinSesiones_ListasVacias(t *testing.T) {
	uc := newUseCase(t, &fakeAnalyticsRepo{}, cantina(), &captureReports{})

	out, err := uc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, out.TopItems)
	assert.Empty(t, out.TopItems)
	assert.NotNil(t, out.BusyDays)
	assert.Empty(t, out.BusyDays)
	assert.Equal(t, "pt-BR", out.Locale)
	assert.Equal(t, "America/Sao_Paulo", out.Timezone)
}

func TestGetAnalytics_TopCincoYDiasLocalizados(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		top: []entity.TopMenuItem{{MenuItemID: 3, Name: "Pizza", Count: 10}, {MenuItemID: 1, Name: "Suco", Count: 4}},
		weekdays: []entity.WeekdayCount{
			{Weekday: time.Friday, Count: 3},
			{Weekday: time.Sunday, Count: 1},
		},
	}
	uc := newUseCase(t, repo, cantina(), &captureReports{})

	out, err := uc.GetAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotLimit)
	assert.Equal(t, "America/Sao_Paulo", repo.gotLoc.String())
	require.Len(t, out.TopItems, 2)
	assert.Equal(t, int64(3), out.TopItems[0].MenuItemID)
	assert.Equal(t, map[string]int64{"sexta-feira": 3, "domingo": 1}, out.BusyDays)
}

func TestGetAnalytics_LocaleDelRequest(t *testing.T) {
	repo := &fakeAnalyticsRepo{weekdays: []entity.WeekdayCount{{Weekday: time.Monday, Count: 2}}}
	uc := newUseCase(t, repo, cantina(), &captureReports{})

	out, err := uc.GetAnalytics(context.Background(), 1, "es")
	require.NoError(t, err)
	assert.Equal(t, "es", out.Locale)
	assert.Equal(t, map[string]int64{"lunes": 2}, out.BusyDays)

	out, err = uc.GetAnalytics(context.Background(), 1, "", "en-US,en;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Monday": 2}, out.BusyDays)
}

func TestGetAnalytics_ErrorDelRepositorio(t *testing.T) {
	boom := errors.New("db caída")
	uc := newUseCase(t, &fakeAnalyticsRepo{topErr: boom}, cantina(), &captureReports{})

	_, err := uc.GetAnalytics(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestGetAnalytics_RestauranteInexistente(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := newUseCase(t, repo, &fakeRestaurantRepo{}, &captureReports{})

	_, err := uc.GetAnalytics(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, repo.gotLimit, "no consulta agregados")
}

func TestReportPDF_RestauranteInexistente(t *testing.T) {
	uc := newUseCase(t, &fakeAnalyticsRepo{}, &fakeRestaurantRepo{}, &captureReports{})

	_, _, err := uc.ReportPDF(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestReportPDF_OrdenaDiasYTraduceEtiquetas(t *testing.T) {
	repo := &fakeAnalyticsRepo{weekdays: []entity.WeekdayCount{
		{Weekday: time.Saturday, Count: 5},
		{Weekday: time.Monday, Count: 2},
	}}
	reports := &captureReports{}
	uc := newUseCase(t, repo, cantina(), reports)
	uc.now = func() time.Time { return time.Date(2026, 3, 6, 15, 0, 0, 0, time.UTC) }

	pdf, filename, err := uc.ReportPDF(context.Background(), 1, "en")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "analytics-1-20260306.pdf", filename)

	require.NotNil(t, reports.got)
	assert.Equal(t, "Cantina", reports.got.RestaurantName)
	assert.Equal(t, "Performance report", reports.got.Labels.Title)
	assert.Equal(t, []DayCount{{Day: "Monday", Count: 2}, {Day: "Saturday", Count: 5}}, reports.got.BusyDays)
}
