// Package export genera las representaciones exportables de un snapshot
// del inventario: CSV, reporte imprimible HTML y reporte PDF.
// Los exportadores solo leen; nunca mutan el almacén.
package export

import (
	"strings"

	"github.com/tu-usuario/stock-cocina/internal/domain/entity"
)

// csvHeader fila de cabecera del contrato de exportación.
const csvHeader = "Item Name,Stock,Unit,Cost per Unit,Total Value,Threshold,Status"

// CSVExporter serializa un snapshot a CSV. El campo del nombre va siempre
// entre comillas dobles, con las comillas internas duplicadas; encoding/csv
// no sirve aquí porque solo entrecomilla cuando el contenido lo exige y el
// contrato pide la columna de nombre entrecomillada siempre.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Render produce el documento CSV completo, una fila por ítem en el orden
// del snapshot.
func (e *CSVExporter) Render(snapshot []*entity.Item) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, it := range snapshot {
		status := "In Stock"
		if it.IsLowStock() {
			status = "Low Stock"
		}
		b.WriteString(quoteName(it.Name))
		b.WriteByte(',')
		b.WriteString(it.Stock.String())
		b.WriteByte(',')
		b.WriteString(it.Unit)
		b.WriteByte(',')
		b.WriteString(it.Cost.StringFixed(2))
		b.WriteByte(',')
		b.WriteString(it.Value().StringFixed(2))
		b.WriteByte(',')
		b.WriteString(it.Threshold.String())
		b.WriteByte(',')
		b.WriteString(status)
		b.WriteByte('\n')
	}
	return b.String()
}

// quoteName entrecomilla el nombre duplicando las comillas internas:
// Bob"s Cheese → "Bob""s Cheese".
func quoteName(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
