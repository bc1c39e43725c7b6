// Package filter evalúa entidades contra los criterios seleccionados por el
// usuario (texto, enums, rangos). Funciones puras: se reevalúan sobre la
// colección completa en cada cambio de filtros, sin índices incrementales.
package filter

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// All es el valor centinela de los filtros enum: "no filtrar por este campo".
const All = "all"

// normalizer quita diacríticos (NFD + remover marcas) para que "hormigón"
// matchee con "hormigon".
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalize(s string) string {
	out, _, err := transform.String(normalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// MatchesSearch es verdadero si el término aparece como substring (sin
// distinguir mayúsculas ni tildes) en alguno de los campos. El término vacío
// matchea siempre.
func MatchesSearch(search string, fields ...string) bool {
	search = strings.TrimSpace(search)
	if search == "" {
		return true
	}
	needle := normalize(search)
	for _, f := range fields {
		if strings.Contains(normalize(f), needle) {
			return true
		}
	}
	return false
}

// MatchesEnum compara exacto; el centinela "all" (o vacío) ignora el campo.
func MatchesEnum(want, got string) bool {
	if want == "" || want == All {
		return true
	}
	return want == got
}

// NumericRange rango numérico inclusivo; bound nil = sin límite de ese lado.
type NumericRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Matches verdadero si Min <= v <= Max (bounds ausentes no restringen).
func (r NumericRange) Matches(v decimal.Decimal) bool {
	if r.Min != nil && v.LessThan(*r.Min) {
		return false
	}
	if r.Max != nil && v.GreaterThan(*r.Max) {
		return false
	}
	return true
}

// DateRange rango de fechas inclusivo; bound nil = sin límite de ese lado.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Matches verdadero si From <= t <= To. Un valor nulo de la entidad solo
// matchea cuando el rango no restringe nada.
func (r DateRange) Matches(t *time.Time) bool {
	if t == nil {
		return r.From == nil && r.To == nil
	}
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Apply devuelve los elementos que satisfacen el predicado, preservando el
// orden de entrada.
func Apply[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
