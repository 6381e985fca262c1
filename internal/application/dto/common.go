package dto

// ErrorResponse cuerpo de error HTTP. Details lleva los campos inválidos cuando aplica.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ListResponse envoltorio de listados.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// NewList arma el listado; nil se serializa como arreglo vacío.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Total: len(items), Items: items}
}
