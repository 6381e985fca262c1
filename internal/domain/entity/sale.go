package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusConfirmed = "confirmed"
	SaleStatusCancelled = "cancelled"
)

// UnidentifiedCustomer es el nombre guardado cuando la venta no indica cliente.
const UnidentifiedCustomer = "Cliente não identificado"

// PaymentMethod forma de pago de una venta.
type PaymentMethod string

const (
	PaymentPix      PaymentMethod = "Pix"
	PaymentCash     PaymentMethod = "Dinheiro"
	PaymentCard     PaymentMethod = "Cartão"
	PaymentDebit    PaymentMethod = "Débito"
	PaymentCredit   PaymentMethod = "Crédito"
	PaymentCredit2x PaymentMethod = "Crédito 2x"
	PaymentCredit3x PaymentMethod = "Crédito 3x"
)

// PaymentMethods lista las formas de pago aceptadas, en orden de presentación.
var PaymentMethods = []PaymentMethod{
	PaymentPix, PaymentCash, PaymentCard, PaymentDebit, PaymentCredit, PaymentCredit2x, PaymentCredit3x,
}

// Valid indica si la forma de pago pertenece a la enumeración.
func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// SaleItem línea de venta. ProductName y UnitPrice son una foto del catálogo al momento de vender.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale representa una venta del caixa.
type Sale struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Time          string          `json:"time"` // HH:MM:SS
	CreatedAt     time.Time       `json:"created_at"`
	SellerID      string          `json:"seller_id"`
	SellerName    string          `json:"seller_name"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        string          `json:"status"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Observations  string          `json:"observations,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CancelReason  string          `json:"cancel_reason,omitempty"`
}

// ShortID devuelve los últimos 8 caracteres del id, usados en las descripciones de caja.
func (s *Sale) ShortID() string {
	if len(s.ID) <= 8 {
		return s.ID
	}
	return s.ID[len(s.ID)-8:]
}

// Clone copia la venta incluyendo sus líneas.
func (s Sale) Clone() Sale {
	s.Items = append([]SaleItem(nil), s.Items...)
	if s.CancelledAt != nil {
		t := *s.CancelledAt
		s.CancelledAt = &t
	}
	return s
}
