package entity

import "time"

// Formatos de fecha y hora guardados en ventas, asientos y movimientos.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// DateOf devuelve la fecha YYYY-MM-DD de t.
func DateOf(t time.Time) string { return t.Format(DateLayout) }

// TimeOf devuelve la hora HH:MM:SS de t.
func TimeOf(t time.Time) string { return t.Format(TimeLayout) }
