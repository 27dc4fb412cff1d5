// Package currency defines the closed set of currencies burnr can bill in
// and their display formatting.
package currency

import (
	"errors"
	"strconv"
	"strings"
)

// Currency identifies one of the supported billing currencies.
type Currency int

const (
	Euro Currency = iota
	UsDollar
	SwedishKrona
)

// ErrUnknownCurrency is returned by Parse for names outside the catalog.
var ErrUnknownCurrency = errors.New("unknown currency")

// All returns the supported currencies in display order.
func All() []Currency {
	return []Currency{Euro, UsDollar, SwedishKrona}
}

// String returns the canonical identifier used for parsing and storage.
func (c Currency) String() string {
	switch c {
	case UsDollar:
		return "usdollar"
	case SwedishKrona:
		return "swedishkrona"
	default:
		return "euro"
	}
}

// LongName returns the human-readable name with its symbol.
func (c Currency) LongName() string {
	switch c {
	case UsDollar:
		return "US Dollar ($)"
	case SwedishKrona:
		return "Swedish Krona (kr)"
	default:
		return "Euro (€)"
	}
}

// Parse matches name against the canonical identifiers, ignoring case and
// surrounding whitespace.
func Parse(name string) (Currency, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euro":
		return Euro, nil
	case "usdollar":
		return UsDollar, nil
	case "swedishkrona":
		return SwedishKrona, nil
	default:
		return Euro, ErrUnknownCurrency
	}
}

// FormatAmount renders amount with two decimals, space-grouped thousands and
// a comma decimal separator, with the symbol placed per currency:
// Euro "1 234,50€", US Dollar "$1 234,50", Swedish Krona "1 234,50 kr".
func (c Currency) FormatAmount(amount float64) string {
	s := grouped(amount)

	switch c {
	case UsDollar:
		return "$" + s
	case SwedishKrona:
		return s + " kr"
	default:
		return s + "€"
	}
}

// grouped formats amount as "1 234,56". Groups use a regular space, not the
// non-breaking space CLDR locales emit.
func grouped(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	b.WriteByte(',')
	b.WriteString(frac)

	return b.String()
}
