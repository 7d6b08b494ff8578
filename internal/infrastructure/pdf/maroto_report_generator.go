// Package pdf genera el reporte de analítica del restaurante en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Restaurante  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Ítem | Pedidos                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Sesiones (+ barra proporcional)                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Restaurante-api/internal/application/analytics"
	"github.com/jhoicas/Restaurante-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 150, Green: 40, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const barWidth = 30 // caracteres de la barra del día con más sesiones

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAnalyticsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnalyticsPDF(_ context.Context, r *analytics.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Labels.Title, true).
		WithAuthor(r.RestaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle(r.Labels.TopItems))
	m.AddRows(topItemsRows(r.TopItems, r.Labels)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle(r.Labels.BusyDays))
	m.AddRows(busyDaysRows(r.BusyDays, r.Labels)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(r *analytics.Report) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Labels.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(r.Labels.Restaurant+": "+r.RestaurantName, props.Text{
				Size: 10, Top: 10,
			}),
		),
		col.New(4).Add(
			text.New(r.Labels.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(r.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(strings.ToUpper(label), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func emptyRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

func topItemsRows(items []dto.TopItemDTO, l analytics.ReportLabels) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow(l.Empty)}
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{row.New(6).Add(
		h("#", 1, align.Center),
		h(l.Item, 8, align.Left),
		h(l.Count, 3, align.Right),
	)}
	for i, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(nonEmpty(it.Name, "#"+strconv.FormatInt(it.MenuItemID, 10)), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(strconv.FormatInt(it.Count, 10), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func busyDaysRows(days []analytics.DayCount, l analytics.ReportLabels) []core.Row {
	if len(days) == 0 {
		return []core.Row{emptyRow(l.Empty)}
	}
	var peak int64
	for _, d := range days {
		if d.Count > peak {
			peak = d.Count
		}
	}
	rows := []core.Row{row.New(6).Add(
		col.New(3).Add(text.New(l.Day, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(l.Sessions, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(7),
	)}
	for _, d := range days {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(d.Day, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(d.Count, 10), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(7).Add(text.New(bar(d.Count, peak), props.Text{Size: 8, Top: 1, Left: 2, Color: colorPrimary})),
		))
	}
	return rows
}

// bar dibuja una barra de texto proporcional a count/peak.
func bar(count, peak int64) string {
	if peak <= 0 || count <= 0 {
		return ""
	}
	n := int(count * barWidth / peak)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("|", n)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
