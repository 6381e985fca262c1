package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mb-vendas/internal/application/sales"
	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// SaleItemRequest línea del pedido.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest pedido de venta. Las reglas de negocio (venta vacía, total, forma de pago,
// stock) las valida el servicio en su orden; aquí sólo la forma del cuerpo.
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"dive"`
	PaymentMethod string            `json:"payment_method" example:"Pix"`
	CustomerID    string            `json:"customer_id"`
	CustomerName  string            `json:"customer_name" validate:"max=120"`
	Discount      decimal.Decimal   `json:"discount"`
	Observations  string            `json:"observations" validate:"max=500"`
}

// ToInput convierte la petición en la entrada del servicio.
func (r CreateSaleRequest) ToInput() sales.CreateSaleInput {
	items := make([]entity.SaleItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.SaleItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return sales.CreateSaleInput{
		Items:         items,
		PaymentMethod: entity.PaymentMethod(r.PaymentMethod),
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		Discount:      r.Discount,
		Observations:  r.Observations,
	}
}

// CancelSaleRequest motivo opcional de la cancelación.
type CancelSaleRequest struct {
	Reason string `json:"reason" validate:"max=200"`
}

// SaleListQuery filtros de GET /api/sales.
type SaleListQuery struct {
	Status     string `query:"status" validate:"omitempty,oneof=confirmed cancelled"`
	DateFrom   string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	SellerID   string `query:"seller_id"`
	CustomerID string `query:"customer_id"`
}

// ToFilter convierte la consulta en el filtro del servicio.
func (q SaleListQuery) ToFilter() sales.SaleFilter {
	return sales.SaleFilter{
		Status:     q.Status,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		SellerID:   q.SellerID,
		CustomerID: q.CustomerID,
	}
}

// DateRangeQuery rango de fechas inclusivo de los reportes.
type DateRangeQuery struct {
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}
