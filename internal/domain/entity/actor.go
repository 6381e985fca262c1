package entity

// Actor identifica al vendedor que ejecuta una operación.
type Actor struct {
	ID   string
	Name string
}
