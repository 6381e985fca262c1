package voice

import "regexp"

// Orden de precedencia: PIX, dinheiro, cartão.
var paymentKeywords = []struct {
	method   PaymentGuess
	keywords []string
}{
	{PaymentPIX, []string{"pix", "no pix", "pelo pix", "via pix"}},
	{PaymentCash, []string{"dinheiro", "em dinheiro", "no dinheiro", "cash", "espécie", "em espécie"}},
	{PaymentCard, []string{"cartão", "cartao", "no cartão", "no cartao", "débito", "debito", "crédito", "credito"}},
}

// La primera palabra presente en este orden gana.
var quantityWords = []struct {
	word  string
	value int
}{
	{"uma", 1}, {"um", 1},
	{"duas", 2}, {"dois", 2},
	{"três", 3}, {"tres", 3},
	{"quatro", 4}, {"cinco", 5}, {"seis", 6}, {"sete", 7},
	{"oito", 8}, {"nove", 9}, {"dez", 10},
}

var customerMarkers = []string{"para", "pro", "do", "da"}

var (
	digitsRe   = regexp.MustCompile(`\b(\d+)\b`)
	articlesRe = regexp.MustCompile(`\b(?:uma?|um)\b`)

	customerPatterns = func() []*regexp.Regexp {
		out := make([]*regexp.Regexp, 0, len(customerMarkers))
		for _, m := range customerMarkers {
			out = append(out, regexp.MustCompile(
				`(?i)\b`+m+`\s+([a-záàâãéèêíïóôõöúçñ\s]+?)(?:\s+no\s|\s+em\s|\s+pelo\s|\s+via\s|$)`,
			))
		}
		return out
	}()

	paymentPhrasePatterns = func() []*regexp.Regexp {
		var out []*regexp.Regexp
		for _, group := range paymentKeywords {
			for _, kw := range group.keywords {
				out = append(out, regexp.MustCompile(`(?i)\b(?:no|em|pelo|via)?\s*`+literalWord(kw)))
			}
		}
		return out
	}()
)

// literalWord arma un patrón literal con límites de palabra sólo donde el extremo es ASCII,
// ya que \b en RE2 no reconoce letras acentuadas.
func literalWord(s string) string {
	if s == "" {
		return ""
	}
	p := regexp.QuoteMeta(s)
	if isASCIIWordByte(s[0]) {
		p = `\b` + p
	}
	if isASCIIWordByte(s[len(s)-1]) {
		p += `\b`
	}
	return p
}

func isASCIIWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
