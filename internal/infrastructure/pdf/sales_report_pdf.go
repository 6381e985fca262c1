// Package pdf genera el relatorio de vendas en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Período + fecha de emisión  │
//	│  RESUMEN: N° ventas | Faturamento | Descontos                │
//	│  TABLA: Forma de pago | Total                                │
//	│  TABLA: Producto | Cant. | Faturamento                       │
//	│  TABLA: Vendedor | Ventas | Faturamento                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/sales"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure SalesReportGenerator implements sales.ReportPDFGenerator.
var _ sales.ReportPDFGenerator = (*SalesReportGenerator)(nil)

// SalesReportGenerator implementa sales.ReportPDFGenerator usando Maroto v2.
type SalesReportGenerator struct {
	storeName string
}

// NewSalesReportGenerator construye el generador; storeName va en el encabezado.
func NewSalesReportGenerator(storeName string) *SalesReportGenerator {
	return &SalesReportGenerator{storeName: storeName}
}

// GenerateSalesReportPDF genera el PDF y devuelve sus bytes.
func (g *SalesReportGenerator) GenerateSalesReportPDF(_ context.Context, report *entity.SalesReport, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, report, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))

	m.AddRows(sectionRow("FORMAS DE PAGAMENTO"))
	m.AddRows(tableHeaderRow("Forma", "", "Total"))
	m.AddRows(paymentRows(report)...)

	m.AddRows(sectionRow("PRODUTOS"))
	m.AddRows(tableHeaderRow("Produto", "Qtd.", "Faturamento"))
	m.AddRows(productRows(report)...)

	m.AddRows(sectionRow("VENDEDORES"))
	m.AddRows(tableHeaderRow("Vendedor", "Vendas", "Faturamento"))
	m.AddRows(sellerRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(storeName string, report *entity.SalesReport, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Relatório de Vendas", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Período: "+periodLabel(report), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
			text.New("Emitido em "+generatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func summaryRow(report *entity.SalesReport) core.Row {
	box := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 7, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		box("Vendas confirmadas", strconv.Itoa(report.TotalSales)),
		box("Faturamento", currency.FormatBRL(report.TotalRevenue)),
		box("Descontos", currency.FormatBRL(report.TotalDiscount)),
	)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4}),
	))
}

func tableHeaderRow(first, middle, last string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(6).Add(
		h(first, 6, align.Left),
		h(middle, 2, align.Center),
		h(last, 4, align.Right),
	)
}

func dataRow(first, middle, last string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(first, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(middle, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(last, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Sem vendas no período", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// paymentRows respeta el orden de presentación de las formas de pago.
func paymentRows(report *entity.SalesReport) []core.Row {
	var rows []core.Row
	for _, method := range entity.PaymentMethods {
		total, ok := report.RevenueByPaymentMethod[method]
		if !ok {
			continue
		}
		rows = append(rows, dataRow(string(method), "", currency.FormatBRL(total)))
	}
	if len(rows) == 0 {
		return []core.Row{emptyRow()}
	}
	return rows
}

// productRows ordena por faturamento descendente.
func productRows(report *entity.SalesReport) []core.Row {
	items := make([]entity.ProductSales, 0, len(report.ByProduct))
	for _, p := range report.ByProduct {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool {
		return revenueFirst(items[i].Revenue, items[j].Revenue, items[i].ProductName, items[j].ProductName)
	})
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, dataRow(p.ProductName, strconv.Itoa(p.Quantity), currency.FormatBRL(p.Revenue)))
	}
	return rows
}

func sellerRows(report *entity.SalesReport) []core.Row {
	items := make([]entity.SellerSales, 0, len(report.BySeller))
	for _, s := range report.BySeller {
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool {
		return revenueFirst(items[i].Revenue, items[j].Revenue, items[i].SellerName, items[j].SellerName)
	})
	if len(items) == 0 {
		return []core.Row{emptyRow()}
	}
	rows := make([]core.Row, 0, len(items))
	for _, s := range items {
		rows = append(rows, dataRow(nonEmpty(s.SellerName, "—"), strconv.Itoa(s.SalesCount), currency.FormatBRL(s.Revenue)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func revenueFirst(a, b decimal.Decimal, nameA, nameB string) bool {
	if !a.Equal(b) {
		return a.GreaterThan(b)
	}
	return nameA < nameB
}

func periodLabel(report *entity.SalesReport) string {
	from := nonEmpty(brDate(report.DateFrom), "início")
	to := nonEmpty(brDate(report.DateTo), "hoje")
	return from + " a " + to
}

// brDate convierte YYYY-MM-DD a DD/MM/YYYY; si no parsea devuelve el texto tal cual.
func brDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
