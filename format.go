package money

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format returns the amount in the currency style of the locale: grouped
// integer digits, the locale's decimal separator and the currency symbol of
// the locale in its customary place, e.g. "$1,234.50", "-$1.14" or "1.234,50 €".
//
// The number of digits after the decimal point is the scale of the currency.
// Extra digits are rounded half to even.
func (l Locale) Format(a Amount) string {
	scale := a.Curr().Scale()
	return l.format(a, scale, scale)
}

// FormatMaxDecimals is like [Locale.Format] but shows at most maxDecimals digits
// after the decimal point.
// Digits up to the scale of the currency are always shown; digits beyond it
// are shown only when they are not trailing zeros.
func (l Locale) FormatMaxDecimals(a Amount, maxDecimals int) string {
	maxDecimals = max(maxDecimals, 0)
	return l.format(a, min(a.Curr().Scale(), maxDecimals), maxDecimals)
}

// FormatOptionalDecimals formats whole amounts without a fractional part and
// all other amounts like [Locale.Format]: "$12" but "$12.50".
// See also method [Amount.DecimalDigits].
func (l Locale) FormatOptionalDecimals(a Amount) string {
	if a.DecimalDigits() == 0 {
		return l.FormatMaxDecimals(a, 0)
	}
	return l.Format(a)
}

func (l Locale) format(a Amount, minDecimals, maxDecimals int) string {
	d := a.Decimal()
	if d.Scale() > maxDecimals {
		d = d.Round(maxDecimals)
	}
	d = d.Trim(minDecimals)

	// Digits
	digs := strconv.FormatUint(d.Coef(), 10)
	scale := d.Scale()
	if len(digs) <= scale {
		digs = strings.Repeat("0", scale-len(digs)+1) + digs
	}
	intdigs, fracdigs := digs[:len(digs)-scale], digs[len(digs)-scale:]
	if tzeros := minDecimals - scale; tzeros > 0 {
		fracdigs += strings.Repeat("0", tzeros)
	}

	// Number
	dec, group := l.separators()
	var num strings.Builder
	for i, r := range intdigs {
		if i > 0 && group != "" && (len(intdigs)-i)%3 == 0 {
			num.WriteString(group)
		}
		num.WriteRune(r)
	}
	if fracdigs != "" {
		num.WriteString(dec)
		num.WriteString(fracdigs)
	}

	sign := ""
	if d.IsNeg() {
		sign = "-"
	}

	// Symbol
	sym := a.Curr().Symbol(l)
	if sym == "" {
		return sign + num.String()
	}
	switch l.placement {
	case SymbolAfter:
		return sign + num.String() + nbsp + sym
	case SymbolBeforeSpaced:
		return sym + nbsp + sign + num.String()
	default:
		if r, _ := utf8.DecodeLastRuneInString(sym); unicode.IsLetter(r) {
			return sign + sym + nbsp + num.String()
		}
		return sign + sym + num.String()
	}
}
