package export

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// PDFReport genera la representación PDF de un snapshot del inventario
// con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del restaurante  │  Fecha del snapshot      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total Items | Low Stock Alerts | Inventory Value  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Stock | Unit | Cost | Value | Thresh | Status│
//	└─────────────────────────────────────────────────────────────┘
type PDFReport struct {
	title    string
	currency string
}

// NewPDFReport construye el generador.
func NewPDFReport(title, currency string) *PDFReport {
	return &PDFReport{title: title, currency: currency}
}

// Render genera el PDF y devuelve sus bytes.
func (g *PDFReport) Render(snapshot []*entity.Item, summary *dto.SummaryResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range g.tableRows(snapshot) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha del snapshot (der).
func (g *PDFReport) headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: banda de totales computados, equivalente al tablero.
func (g *PDFReport) summaryRow(s *dto.SummaryResponse) core.Row {
	metric := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: c, Top: 6}),
		)
	}
	lowColor := colorPrimary
	if s.LowStockCount > 0 {
		lowColor = colorAlert
	}
	return row.New(14).Add(
		metric("Total Items", fmt.Sprintf("%d", s.TotalItems), colorPrimary),
		metric("Low Stock Alerts", fmt.Sprintf("%d", s.LowStockCount), lowColor),
		metric("Inventory Value", g.currency+" "+s.TotalValue.StringFixed(2), colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item Name", 3, align.Left),
		h("Stock", 2, align.Right),
		h("Unit", 1, align.Left),
		h("Cost per Unit", 2, align.Right),
		h("Total Value", 2, align.Right),
		h("Status", 2, align.Center),
	)
}

// tableRows: una fila por ítem en el orden del snapshot; los ítems con
// stock bajo van marcados en rojo.
func (g *PDFReport) tableRows(snapshot []*entity.Item) []core.Row {
	result := make([]core.Row, 0, len(snapshot))
	for _, it := range snapshot {
		status, statusColor := "In Stock", colorGray
		if it.IsLowStock() {
			status, statusColor = "Low Stock", colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(it.Stock.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(it.Unit, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(g.currency+" "+it.Cost.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(g.currency+" "+it.Value().StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New(status, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}
