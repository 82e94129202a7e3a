package money

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Lookup is the source of localized currency display data.
// Implementations return false when they have no mapping for a code; callers
// then fall back to the code itself.
type Lookup interface {
	// CurrencyName returns a human-readable name of the currency.
	CurrencyName(code string, tag language.Tag) (string, bool)
	// CurrencySymbol returns the currency symbol for the language and
	// region of tag.
	CurrencySymbol(code string, tag language.Tag) (string, bool)
}

// CLDR is a [Lookup] backed by the Unicode CLDR data shipped with
// golang.org/x/text.
// Symbols are localized by language and region.
// Names are taken from the currency catalog and are always in English.
type CLDR struct{}

// CurrencyName implements the [Lookup] interface.
func (CLDR) CurrencyName(code string, _ language.Tag) (string, bool) {
	i, ok := catalogIndex[code]
	if !ok {
		return "", false
	}
	return catalog[i].name, true
}

// CurrencySymbol implements the [Lookup] interface.
// The unknown currency "XXX" has no symbol.
func (CLDR) CurrencySymbol(code string, tag language.Tag) (string, bool) {
	if code == "" || code == "XXX" {
		return "", false
	}
	u, err := currency.ParseISO(code)
	if err != nil {
		return "", false
	}
	sym := message.NewPrinter(tag).Sprint(currency.Symbol(u))
	if sym == "" || sym == code {
		return "", false
	}
	return sym, true
}

// SymbolPlacement describes where a currency symbol goes relative to the number.
type SymbolPlacement int

const (
	// SymbolBefore renders "$12.00".
	SymbolBefore SymbolPlacement = iota
	// SymbolBeforeSpaced renders "€ 12,00".
	SymbolBeforeSpaced
	// SymbolAfter renders "12,00 €".
	SymbolAfter
)

// nbsp separates a symbol from the number when the pattern asks for a space.
const nbsp = "\u00a0"

// Locale is a display context for amounts: a language tag, a [Lookup]
// for currency names and symbols, and the number symbols of the language.
// The zero value formats like American English with CLDR lookups.
//
// Locale is immutable and safe for concurrent use.
type Locale struct {
	tag       language.Tag
	lookupper Lookup
	decimal   string
	group     string
	placement SymbolPlacement
}

// LocaleOption configures a [Locale].
type LocaleOption func(*Locale)

// WithLookup replaces the CLDR lookup of currency names and symbols.
func WithLookup(l Lookup) LocaleOption {
	return func(loc *Locale) {
		loc.lookupper = l
	}
}

// WithSeparators sets the decimal and grouping separators.
// An empty group disables digit grouping.
func WithSeparators(decimal, group string) LocaleOption {
	return func(loc *Locale) {
		loc.decimal = decimal
		loc.group = group
	}
}

// WithSymbolPlacement sets where the currency symbol is placed.
func WithSymbolPlacement(p SymbolPlacement) LocaleOption {
	return func(loc *Locale) {
		loc.placement = p
	}
}

// NewLocale returns a locale for the given language tag.
// Separators and symbol placement are derived from CLDR unless overridden
// by options.
func NewLocale(tag language.Tag, opts ...LocaleOption) Locale {
	dec, group := cldrSeparators(tag)
	loc := Locale{
		tag:       tag,
		lookupper: CLDR{},
		decimal:   dec,
		group:     group,
		placement: placementOf(tag),
	}
	for _, opt := range opts {
		opt(&loc)
	}
	return loc
}

// MustParseLocale is like [NewLocale] but takes a BCP 47 string such as "en-US".
// It panics if the string is not a well-formed language tag.
func MustParseLocale(s string, opts ...LocaleOption) Locale {
	return NewLocale(language.MustParse(s), opts...)
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Region returns the active region of the locale.
// When the tag has no explicit region, the most likely one is inferred,
// so "en" yields US.
func (l Locale) Region() language.Region {
	r, _ := l.tag.Region()
	return r
}

func (l Locale) lookup() Lookup {
	if l.lookupper == nil {
		return CLDR{}
	}
	return l.lookupper
}

func (l Locale) separators() (dec, group string) {
	if l.decimal == "" {
		return ".", ","
	}
	return l.decimal, l.group
}

// cldrSeparators renders a probe number in the language of tag and picks
// the separators out of it.
// Languages that do not use ASCII digits get "." and ",".
func cldrSeparators(tag language.Tag) (dec, group string) {
	probe := message.NewPrinter(tag).Sprint(
		number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)),
	)
	var runs []string
	var sep strings.Builder
	digits := false
	for _, r := range probe {
		switch {
		case r >= '0' && r <= '9':
			if digits && sep.Len() > 0 {
				runs = append(runs, sep.String())
			}
			sep.Reset()
			digits = true
		case unicode.IsDigit(r):
			return ".", ","
		default:
			sep.WriteRune(r)
		}
	}
	switch len(runs) {
	case 0:
		return ".", ","
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}

// Symbol placement by language, with regional exceptions.
var (
	placementByTag = map[string]SymbolPlacement{
		"nl":     SymbolBeforeSpaced,
		"de-AT":  SymbolBeforeSpaced,
		"de-CH":  SymbolBeforeSpaced,
		"pt-BR":  SymbolBeforeSpaced,
		"es-MX":  SymbolBefore,
		"es-US":  SymbolBefore,
		"es-419": SymbolBefore,
	}
	symbolAfter = map[string]bool{
		"bg": true, "cs": true, "da": true, "de": true, "el": true,
		"es": true, "et": true, "fi": true, "fr": true, "hr": true,
		"hu": true, "is": true, "it": true, "lt": true, "lv": true,
		"nb": true, "nn": true, "no": true, "pl": true, "pt": true,
		"ro": true, "ru": true, "sk": true, "sl": true, "sr": true,
		"sv": true, "uk": true, "vi": true,
	}
)

func placementOf(tag language.Tag) SymbolPlacement {
	base, _ := tag.Base()
	region, _ := tag.Region()
	if p, ok := placementByTag[base.String()+"-"+region.String()]; ok {
		return p
	}
	if p, ok := placementByTag[base.String()]; ok {
		return p
	}
	if symbolAfter[base.String()] {
		return SymbolAfter
	}
	return SymbolBefore
}
