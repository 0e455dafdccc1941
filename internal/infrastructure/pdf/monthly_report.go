// Package pdf genera el reporte mensual de producción en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + mes          │  fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Funcionário | Setor | Peças                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DO MÊS                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/jhoicas/recout-api/internal/application/dto"
	"github.com/jhoicas/recout-api/internal/application/ports"
)

var (
	colorPrimary = &props.Color{Red: 76, Green: 29, Blue: 149}
	colorAccent  = &props.Color{Red: 255, Green: 215, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 243, Green: 240, Blue: 250}
)

var _ ports.MonthlyReportRenderer = (*MonthlyReportGenerator)(nil)

// MonthlyReportGenerator implementa ports.MonthlyReportRenderer con Maroto v2.
type MonthlyReportGenerator struct {
	company string
}

// NewMonthlyReportGenerator construye el generador; company aparece en el encabezado.
func NewMonthlyReportGenerator(company string) *MonthlyReportGenerator {
	return &MonthlyReportGenerator{company: company}
}

// RenderMonthlyReport genera el PDF y devuelve sus bytes.
func (g *MonthlyReportGenerator) RenderMonthlyReport(report dto.MonthlyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Mensal de Produção", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(4))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte mensual: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MonthlyReportGenerator) headerRow(report dto.MonthlyReportDTO) core.Row {
	issued := ""
	if !report.GeneratedAt.IsZero() {
		issued = "Emitido em " + report.GeneratedAt.Format("02/01/2006 15:04")
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(g.company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Relatório Mensal de Produção · "+report.MonthLabel, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(issued, props.Text{Size: 8, Align: align.Right, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorAccent, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Funcionário", 6, align.Left),
		h("Setor", 3, align.Left),
		h("Peças", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por empleado, en el orden recibido (ya viene de mayor a menor).
func tableRows(rows []dto.MonthlyReportRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		rr := row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(r.Sector, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(strconv.Itoa(r.Count), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
		if i%2 == 1 {
			rr = rr.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, rr)
	}
	return out
}

func totalRow(rows []dto.MonthlyReportRow) core.Row {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return row.New(10).Add(
		col.New(10).Add(text.New("TOTAL DO MÊS", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary})),
		col.New(2).Add(text.New(strconv.Itoa(total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 1})),
	)
}
