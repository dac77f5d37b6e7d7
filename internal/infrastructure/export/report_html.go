package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tu-usuario/stock-cocina/internal/application/dto"
	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// reportTemplate reporte imprimible: totales computados arriba y las
// mismas filas que el CSV como tabla HTML.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.summary { display: flex; gap: 2rem; margin-bottom: 1.5rem; }
.summary div { padding: 0.5rem 1rem; border: 1px solid #ccc; border-radius: 4px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
tr.low { background: #fdecea; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="summary">
  <div>Total Items: <strong>{{.Summary.TotalItems}}</strong></div>
  <div>Low Stock Alerts: <strong>{{.Summary.LowStockCount}}</strong></div>
  <div>Inventory Value: <strong>{{.Currency}} {{.TotalValue}}</strong></div>
</div>
<table>
<tr><th>Item Name</th><th>Stock</th><th>Unit</th><th>Cost per Unit</th><th>Total Value</th><th>Threshold</th><th>Status</th></tr>
{{- range .Rows}}
<tr{{if .Low}} class="low"{{end}}><td>{{.Name}}</td><td>{{.Stock}}</td><td>{{.Unit}}</td><td>{{.Cost}}</td><td>{{.Value}}</td><td>{{.Threshold}}</td><td>{{.Status}}</td></tr>
{{- end}}
</table>
</body>
</html>
`

type reportRow struct {
	Name      string
	Stock     string
	Unit      string
	Cost      string
	Value     string
	Threshold string
	Status    string
	Low       bool
}

// HTMLReport genera el reporte imprimible del snapshot.
type HTMLReport struct {
	title    string
	currency string
	tmpl     *template.Template
}

// NewHTMLReport construye el reporte con el nombre del restaurante y la
// etiqueta de moneda a mostrar.
func NewHTMLReport(title, currency string) *HTMLReport {
	return &HTMLReport{
		title:    title,
		currency: currency,
		tmpl:     template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Render produce el documento HTML con los totales arriba y una fila por
// ítem en el orden del snapshot.
func (r *HTMLReport) Render(snapshot []*entity.Item, summary *dto.SummaryResponse) (string, error) {
	rows := make([]reportRow, 0, len(snapshot))
	for _, it := range snapshot {
		status := "In Stock"
		if it.IsLowStock() {
			status = "Low Stock"
		}
		rows = append(rows, reportRow{
			Name:      it.Name,
			Stock:     it.Stock.String(),
			Unit:      it.Unit,
			Cost:      it.Cost.StringFixed(2),
			Value:     it.Value().StringFixed(2),
			Threshold: it.Threshold.String(),
			Status:    status,
			Low:       it.IsLowStock(),
		})
	}

	var b strings.Builder
	err := r.tmpl.Execute(&b, map[string]any{
		"Title":      r.title,
		"Currency":   r.currency,
		"Summary":    summary,
		"TotalValue": summary.TotalValue.StringFixed(2),
		"Rows":       rows,
	})
	if err != nil {
		return "", fmt.Errorf("reporte html: %w", err)
	}
	return b.String(), nil
}
