package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// ReportPDFGenerator puerto para exportar el reporte de ventas.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(ctx context.Context, report *entity.SalesReport, generatedAt time.Time) ([]byte, error)
}

// GetSalesReport resume las ventas confirmadas del rango; las canceladas no cuentan.
func (s *Service) GetSalesReport(ctx context.Context, dateFrom, dateTo string) (*entity.SalesReport, error) {
	confirmed, err := s.GetSales(ctx, SaleFilter{
		Status:   entity.SaleStatusConfirmed,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	})
	if err != nil {
		return nil, err
	}
	return BuildReport(confirmed, dateFrom, dateTo), nil
}

// ReportPDF genera el reporte del rango en PDF.
func (s *Service) ReportPDF(ctx context.Context, dateFrom, dateTo string) ([]byte, error) {
	if s.pdf == nil {
		return nil, fmt.Errorf("generador PDF no configurado")
	}
	report, err := s.GetSalesReport(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	return s.pdf.GenerateSalesReportPDF(ctx, report, s.now())
}

// BuildReport agrega las ventas recibidas sin filtrarlas.
func BuildReport(sales []entity.Sale, dateFrom, dateTo string) *entity.SalesReport {
	r := &entity.SalesReport{
		DateFrom:               dateFrom,
		DateTo:                 dateTo,
		TotalRevenue:           decimal.Zero,
		TotalDiscount:          decimal.Zero,
		RevenueByPaymentMethod: make(map[entity.PaymentMethod]decimal.Decimal),
		ByProduct:              make(map[string]entity.ProductSales),
		BySeller:               make(map[string]entity.SellerSales),
	}
	for _, sale := range sales {
		r.TotalSales++
		r.TotalRevenue = r.TotalRevenue.Add(sale.Total)
		r.TotalDiscount = r.TotalDiscount.Add(sale.Discount)

		byMethod, ok := r.RevenueByPaymentMethod[sale.PaymentMethod]
		if !ok {
			byMethod = decimal.Zero
		}
		r.RevenueByPaymentMethod[sale.PaymentMethod] = byMethod.Add(sale.Total)

		for _, it := range sale.Items {
			p, ok := r.ByProduct[it.ProductID]
			if !ok {
				p = entity.ProductSales{ProductName: it.ProductName, Revenue: decimal.Zero}
			}
			p.Quantity += it.Quantity
			p.Revenue = p.Revenue.Add(it.Subtotal)
			r.ByProduct[it.ProductID] = p
		}

		seller, ok := r.BySeller[sale.SellerID]
		if !ok {
			seller = entity.SellerSales{SellerName: sale.SellerName, Revenue: decimal.Zero}
		}
		seller.SalesCount++
		seller.Revenue = seller.Revenue.Add(sale.Total)
		r.BySeller[sale.SellerID] = seller
	}
	return r
}
