package voice

import (
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// MatchProduct resuelve el nombre adivinado contra el catálogo en tres etapas:
// igualdad sin mayúsculas, contención en cualquier sentido y palabras de más de dos letras.
func MatchProduct(name string, catalog []entity.Product) *entity.Product {
	if name == "" || len(catalog) == 0 {
		return nil
	}
	guess := strings.ToLower(name)

	for i := range catalog {
		if strings.ToLower(catalog[i].Name) == guess {
			return productRef(catalog[i])
		}
	}
	for i := range catalog {
		pn := strings.ToLower(catalog[i].Name)
		if strings.Contains(pn, guess) || strings.Contains(guess, pn) {
			return productRef(catalog[i])
		}
	}

	var keywords []string
	for _, w := range strings.Fields(guess) {
		if utf8.RuneCountInString(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	for i := range catalog {
		pn := strings.ToLower(catalog[i].Name)
		for _, kw := range keywords {
			if strings.Contains(pn, kw) {
				return productRef(catalog[i])
			}
		}
	}
	return nil
}

// FindByName busca un producto por nombre exacto sin distinguir mayúsculas.
func FindByName(catalog []entity.Product, name string) *entity.Product {
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, name) {
			return productRef(catalog[i])
		}
	}
	return nil
}

func productRef(p entity.Product) *entity.Product { return &p }
