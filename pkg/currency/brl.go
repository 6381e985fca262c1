// Package currency formatea valores monetarios para reportes y salida de la CLI.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL código ISO del real brasileño.
const BRL = "BRL"

// Format devuelve el valor con el símbolo y separadores de la moneda (ej. "R$1.234,50").
// El valor se redondea a las fracciones de la moneda.
func Format(value decimal.Decimal, code string) string {
	cur := *money.New(0, code).Currency()
	minor := value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatBRL atajo para reales.
func FormatBRL(value decimal.Decimal) string {
	return Format(value, BRL)
}
