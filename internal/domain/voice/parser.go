package voice

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
)

// Parse interpreta la transcripción contra el catálogo. Nunca falla: los campos que no se
// pueden extraer quedan en su valor por defecto y bajan la confianza.
func Parse(transcript string, catalog []entity.Product) ParsedVoiceSale {
	payment := ExtractPaymentMethod(transcript)
	quantity, token := ExtractQuantity(transcript)
	customer := ExtractCustomerName(transcript)
	guess := ExtractProductName(transcript, quantity, token, customer, payment)
	matched := MatchProduct(guess, catalog)

	out := ParsedVoiceSale{
		ProductName:   guess,
		Quantity:      quantity,
		CustomerName:  customer,
		PaymentMethod: payment,
		RawTranscript: transcript,
	}
	if matched != nil {
		out.ProductName = matched.Name
		out.ProductID = matched.ID
	}
	out.Confidence = scoreConfidence(matched != nil, customer != "", payment != PaymentNone)
	return out
}

// ExtractPaymentMethod busca las palabras clave como subcadena del texto en minúsculas.
func ExtractPaymentMethod(transcript string) PaymentGuess {
	lower := strings.ToLower(transcript)
	for _, group := range paymentKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.method
			}
		}
	}
	return PaymentNone
}

// ExtractQuantity devuelve la cantidad y el token que la originó ("" si se usó el valor por defecto).
func ExtractQuantity(transcript string) (int, string) {
	lower := strings.ToLower(transcript)
	for _, qw := range quantityWords {
		if strings.Contains(lower, qw.word) {
			return qw.value, qw.word
		}
	}
	if m := digitsRe.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Fuera de rango: cantidad inválida en lugar de asumir 1.
			return 0, m[1]
		}
		return n, m[1]
	}
	return 1, ""
}

// ExtractCustomerName aplica los patrones para/pro/do/da sobre el texto original.
func ExtractCustomerName(transcript string) string {
	for _, re := range customerPatterns {
		m := re.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		if name := strings.TrimSpace(m[1]); name != "" {
			return titleCase(name)
		}
	}
	return ""
}

// ExtractProductName obtiene el nombre del producto quitando del texto la cantidad,
// el cliente y la forma de pago.
func ExtractProductName(transcript string, quantity int, quantityToken, customer string, payment PaymentGuess) string {
	cleaned := strings.ToLower(transcript)

	if quantityToken != "" {
		cleaned = regexp.MustCompile(literalWord(quantityToken)).ReplaceAllString(cleaned, " ")
	}
	if quantity == 1 {
		cleaned = articlesRe.ReplaceAllString(cleaned, " ")
	}
	if customer != "" {
		re := regexp.MustCompile(`(?i)\b(?:para|pro|do|da)\s+` + strings.TrimPrefix(literalWord(customer), `\b`))
		cleaned = re.ReplaceAllString(cleaned, " ")
	}
	if payment != PaymentNone {
		for _, re := range paymentPhrasePatterns {
			cleaned = re.ReplaceAllString(cleaned, " ")
		}
	}

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = upperFirst(w)
	}
	return strings.Join(words, " ")
}

func scoreConfidence(productMatched, hasCustomer, hasPayment bool) Confidence {
	score := 0
	for _, ok := range []bool{productMatched, hasCustomer, hasPayment} {
		if ok {
			score++
		}
	}
	switch score {
	case 3:
		return ConfidenceHigh
	case 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

func upperFirst(w string) string {
	for i, r := range w {
		if i == 0 {
			return strings.ToUpper(string(r)) + w[len(string(r)):]
		}
	}
	return w
}
