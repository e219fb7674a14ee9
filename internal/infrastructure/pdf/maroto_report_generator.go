// Package pdf implementa la generación del reporte PDF de inventario de un
// restaurante usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante + dirección  │  Fecha del reporte      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant | Mín | Costo | Valor    │
//	│         (las líneas en stock bajo van marcadas)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: líneas / en stock bajo / VALOR TOTAL               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
)

var _ usecase.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 60, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.InventoryPDFGenerator usando
// Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	restaurant *entity.Restaurant,
	items []*entity.InventoryItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(restaurant.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(restaurant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + dirección (izq) y fecha del reporte (der).
func headerRow(restaurant *entity.Restaurant) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(restaurant.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(restaurant.Address, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 2, align.Right),
		h("Mín.", 1, align.Right),
		h("Costo U.", 1, align.Right),
		h("Valor", 2, align.Right),
	)
}

// itemRows: una fila por línea de inventario; el stock bajo se marca en
// color de alerta.
func itemRows(items []*entity.InventoryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		var nameColor *props.Color
		name := it.Name
		if inventory.IsLowStock(it) {
			nameColor = colorAlert
			name += " (!)"
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor,
			})),
			col.New(2).Add(text.New(it.Category, props.Text{
				Size: 8, Align: align.Left, Top: 1, Color: colorGray,
			})),
			col.New(2).Add(text.New(
				it.Quantity.String()+" "+it.Unit,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(it.MinStock.String(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
			col.New(1).Add(text.New("$"+it.CostPerUnit.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("$"+inventory.ItemValue(it).StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: resumen al pie del reporte.
func totalsRow(items []*entity.InventoryItem) core.Row {
	lowStock := 0
	for _, it := range items {
		if inventory.IsLowStock(it) {
			lowStock++
		}
	}
	return row.New(10).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d líneas   |   %d en stock bajo", len(items), lowStock),
			props.Text{Size: 9, Top: 2, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"VALOR TOTAL: $"+inventory.TotalValue(items).StringFixed(2),
			props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary},
		)),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
