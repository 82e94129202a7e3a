package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// ErrCurrencyMismatch is the error carried by the panic raised when two amounts
// denominated in different currencies are combined or compared.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Amount type represents a monetary amount: an exact decimal value bound to
// a currency that never changes for the lifetime of the amount.
// Its zero value corresponds to "0" in the [Unknown] currency.
//
// All operations return new amounts, so Amount is safe for concurrent use
// by multiple goroutines.
//
// Operations that combine or compare two amounts (Add, Sub, Rat, Cmp and
// the ordering helpers) require both amounts to be denominated in the same
// currency. Mixing currencies is a programming error and these methods panic
// with an error wrapping [ErrCurrencyMismatch] instead of returning a result
// in the wrong currency.
type Amount struct {
	curr  Currency        // currency tag
	value decimal.Decimal // monetary value
}

// NewAmount returns an amount with the specified currency and value.
// The value is stored exactly as given; its scale is not adjusted to the
// scale of the currency.
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return Amount{curr: curr, value: value}
}

// Zero returns an amount with a value of 0 in the specified currency.
func Zero(curr Currency) Amount {
	return Amount{curr: curr}
}

// NewAmountFromInt64 returns an amount equal to coef / 10^scale.
//
// NewAmountFromInt64 returns an error if the scale is negative or greater
// than [decimal.MaxScale].
func NewAmountFromInt64(curr Currency, coef int64, scale int) (Amount, error) {
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return NewAmount(curr, d), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The currency code is normalized with [NewCurr]; the scale of the decimal
// string is preserved, so "12.30" keeps two digits after the decimal point.
// See also constructor [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount(NewCurr(curr), d), nil
}

// MustParseAmount is like [ParseAmount] but panics if the amount cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Decimal().IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return NewAmount(a.Curr(), a.Decimal().Neg())
}

// Abs returns the absolute value of the amount.
// The amount is negated only if it is negative.
func (a Amount) Abs() Amount {
	if a.IsNeg() {
		return a.Neg()
	}
	return a
}

// Scale returns the number of digits after the decimal point, including
// trailing zeros.
// See also method [Amount.DecimalDigits].
func (a Amount) Scale() int {
	return a.Decimal().Scale()
}

// DecimalDigits returns the number of digits after the decimal point needed to
// represent the amount exactly: 0 for "12.00", 1 for "12.30", 3 for "12.345".
// It reflects the stored value, not the conventional scale of the currency.
func (a Amount) DecimalDigits() int {
	return a.Decimal().MinScale()
}

// Normalize returns an amount with all trailing zeros removed.
// Two amounts are [Amount.Equal] if and only if their normalized forms are
// equal with ==, so normalized amounts are suitable as map keys.
func (a Amount) Normalize() Amount {
	return NewAmount(a.Curr(), a.Decimal().Trim(0))
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// mustSameCurr panics if the amounts are denominated in different currencies.
func (a Amount) mustSameCurr(op string, b Amount) {
	if !a.SameCurr(b) {
		panic(fmt.Errorf("computing [%v %s %v]: %w", a, op, b, ErrCurrencyMismatch))
	}
}

// Add returns the (possibly rounded) sum of amounts a and b.
// The result is denominated in the currency of a.
//
// Add panics if amounts are denominated in different currencies.
// Add returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a Amount) Add(b Amount) (Amount, error) {
	a.mustSameCurr("+", b)
	d, err := a.Decimal().Add(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return NewAmount(a.Curr(), d), nil
}

// Sub returns the (possibly rounded) difference between amounts a and b.
//
// Sub panics if amounts are denominated in different currencies.
// Sub returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	a.mustSameCurr("-", b)
	d, err := a.Decimal().Sub(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return NewAmount(a.Curr(), d), nil
}

// Mul returns the (possibly rounded) product of amount a and factor e.
// The currency is preserved.
// See also function [Times] and method [Amount.MulInt].
//
// Mul returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	d, err := a.Decimal().Mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return NewAmount(a.Curr(), d), nil
}

// MulInt returns the product of amount a and integer factor n.
// See also method [Amount.Mul].
func (a Amount) MulInt(n int64) (Amount, error) {
	e, err := decimal.New(n, 0)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, n, err)
	}
	return a.Mul(e)
}

// Times returns the product of factor e and amount a.
// It is the factor-first form of [Amount.Mul] and gives the same result.
func Times(e decimal.Decimal, a Amount) (Amount, error) {
	d, err := e.Mul(a.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", e, a, err)
	}
	return NewAmount(a.Curr(), d), nil
}

// Quo returns the (possibly rounded) quotient of amount a and divisor e.
// The currency is preserved.
// See also method [Amount.Rat].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (a Amount) Quo(e decimal.Decimal) (Amount, error) {
	d, err := a.Decimal().Quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return NewAmount(a.Curr(), d), nil
}

// Rat returns the (possibly rounded) ratio between amounts a and b.
// The result is a plain decimal without currency, useful for computing
// percentages within a single currency.
// See also method [Amount.Quo].
//
// Rat panics if amounts are denominated in different currencies.
// Rat returns an error if:
//   - the divisor is 0;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (a Amount) Rat(b Amount) (decimal.Decimal, error) {
	a.mustSameCurr("/", b)
	d, err := a.Decimal().Quo(b.Decimal())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	return d, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp panics if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) int {
	a.mustSameCurr("<=>", b)
	return a.Decimal().Cmp(b.Decimal())
}

// Greater returns true if a > b.
// It panics if amounts are denominated in different currencies.
func (a Amount) Greater(b Amount) bool {
	a.mustSameCurr(">", b)
	return a.Decimal().Cmp(b.Decimal()) > 0
}

// Less returns true if a < b.
// It panics if amounts are denominated in different currencies.
func (a Amount) Less(b Amount) bool {
	a.mustSameCurr("<", b)
	return a.Decimal().Cmp(b.Decimal()) < 0
}

// GreaterEqual returns true if a >= b.
// It panics if amounts are denominated in different currencies.
func (a Amount) GreaterEqual(b Amount) bool {
	a.mustSameCurr(">=", b)
	return a.Decimal().Cmp(b.Decimal()) >= 0
}

// LessEqual returns true if a <= b.
// It panics if amounts are denominated in different currencies.
func (a Amount) LessEqual(b Amount) bool {
	a.mustSameCurr("<=", b)
	return a.Decimal().Cmp(b.Decimal()) <= 0
}

// Equal returns true if amounts are denominated in the same currency and
// are numerically equal; "EUR 12.0" equals "EUR 12.00".
// Unlike the ordering methods, Equal does not panic on different currencies.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Decimal().Cmp(b.Decimal()) == 0
}

// Round returns an amount rounded to the specified number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// See also method [Amount.RoundToCurr].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Round(scale int) Amount {
	return NewAmount(a.Curr(), a.Decimal().Round(scale))
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using [rounding half to even] (banker's rounding).
// See also methods [Amount.Round], [Currency.Scale].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	return a.Round(a.Curr().Scale())
}

// Trunc returns an amount truncated to the specified number of digits after
// the decimal point using [rounding toward zero].
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (a Amount) Trunc(scale int) Amount {
	return NewAmount(a.Curr(), a.Decimal().Trunc(scale))
}

// String implements the [fmt.Stringer] interface and returns a locale-independent
// representation of an amount, such as "EUR -1.14".
// Amounts in the [Unknown] currency are rendered without a currency code.
// See also methods [Amount.Format] and [Locale.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	if a.Curr().IsUnknown() {
		return a.Decimal().String()
	}
	return a.Curr().Code() + " " + a.Decimal().String()
}

// amountJSON is the wire shape of an amount.
// The value is a string so that the scale survives the round trip.
type amountJSON struct {
	Value    string   `json:"value"`
	Currency Currency `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The result is an object such as {"value":"12.30","currency":"EUR"}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Value: a.Decimal().String(), Currency: a.Curr()})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The value field may be a JSON string or a JSON number.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var aux struct {
		Value    json.RawMessage `json:"value"`
		Currency Currency        `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	raw := bytes.Trim(aux.Value, `"`)
	if len(raw) == 0 {
		return fmt.Errorf("unmarshaling %T: missing value", Amount{})
	}
	d, err := decimal.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = NewAmount(aux.Currency, d)
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// The result is the same as [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The input must be in the format produced by [Amount.String].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	curr, value, ok := strings.Cut(string(text), " ")
	if !ok {
		curr, value = "", curr
	}
	b, err := ParseAmount(curr, value)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = b
	return nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the amount.
// For locale-aware rendering with currency symbols use [Locale.Format].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (a Amount) Format(state fmt.State, verb rune) {
	c, d := a.Curr(), a.Decimal()

	// Rescaling
	tzeros := 0
	if verb == 'f' || verb == 'F' {
		if p, ok := state.Precision(); ok {
			switch {
			case p < d.Scale():
				d = d.Round(p)
			case p > d.Scale():
				tzeros = p - d.Scale()
			}
		}
	}

	// Integer and fractional digits
	intdigs, fracdigs := 0, 0
	switch aprec := d.Prec(); verb {
	case 'c', 'C':
		// skip
	default:
		fracdigs = d.Scale()
		if aprec > fracdigs {
			intdigs = aprec - fracdigs
		}
		if d.WithinOne() {
			intdigs++ // leading 0
		}
	}

	// Decimal point
	dpoint := 0
	if fracdigs > 0 || tzeros > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && verb != 'C' && (d.IsNeg() || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency code and delimiter
	curr, currsyms, currdel := "", 0, 0
	switch verb {
	case 'f', 'F':
		// skip
	case 'c', 'C':
		curr = c.Code()
		currsyms = len(curr)
	default:
		curr = c.Code()
		currsyms = len(curr)
		if currsyms > 0 {
			currdel = 1
		}
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currsyms + currdel + rsign + intdigs + dpoint + fracdigs + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for range tzeros {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	coef := d.Coef()
	for range fracdigs {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for range intdigs {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Leading zeros
	for range lzeros {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		if d.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}

	// Currency delimiter
	if currdel > 0 {
		buf[pos] = ' '
		pos--
	}

	// Currency code
	for i := currsyms; i > 0; i-- {
		buf[pos] = curr[i-1]
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
