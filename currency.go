package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency by its alphabetic code, such as "EUR".
// The zero value is [Unknown], a currency with an empty code.
//
// Currency does not validate its code against [ISO 4217]: any string is accepted
// and normalized to upper case. A code that is not a real currency is still
// a usable tag; it only degrades localized lookups to the raw code.
//
// Currency is a comparable value and can be used as a map key.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code string
}

var (
	// EUR is the Euro.
	EUR = NewCurr("EUR")
	// USD is the US Dollar.
	USD = NewCurr("USD")
	// GBP is the British Pound.
	GBP = NewCurr("GBP")
	// Unknown is the currency with an empty code.
	Unknown = Currency{}
)

var errInvalidCurrency = errors.New("invalid currency")

// NewCurr returns a currency with the given code converted to upper case.
// It never fails; malformed codes are kept as they are.
func NewCurr(code string) Currency {
	return Currency{code: strings.ToUpper(code)}
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the normalized alphabetic code of the currency.
func (c Currency) Code() string {
	return c.code
}

// IsUnknown returns true if the currency code is empty.
func (c Currency) IsUnknown() bool {
	return c.code == ""
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// If the currency is not part of the catalog, Num returns an empty string.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if i, ok := catalogIndex[c.code]; ok {
		return catalog[i].num
	}
	return ""
}

// Scale returns the number of digits after the decimal point conventionally
// used to display amounts in the currency.
// The value comes from the CLDR currency data: 2 for the US Dollar,
// 0 for the Japanese Yen, 3 for the Omani Rial.
// Codes unknown to CLDR use a scale of 2.
func (c Currency) Scale() int {
	u, err := currency.ParseISO(c.code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(u)
	return scale
}

// LocalizedName returns the display name of the currency in the given locale.
// If the locale has no name for the currency, the code is returned.
func (c Currency) LocalizedName(l Locale) string {
	if name, ok := l.lookup().CurrencyName(c.code, l.Tag()); ok && name != "" {
		return name
	}
	return c.code
}

// Symbol returns the currency symbol in the given locale.
// The symbol depends on both the language and the region of the locale:
// the US Dollar is "$" in en-US but "US$" in en-CA.
// If the locale has no symbol for the currency, the code is returned.
func (c Currency) Symbol(l Locale) string {
	if sym, ok := l.lookup().CurrencySymbol(c.code, l.Tag()); ok && sym != "" {
		return sym
	}
	return c.code
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The input must be a JSON string or null.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(text, &s); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Unknown, err)
	}
	*c = NewCurr(s)
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.code)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [NewCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	*c = NewCurr(string(text))
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (c Currency) AppendText(text []byte) ([]byte, error) {
	return append(text, c.code...), nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (c *Currency) UnmarshalBinary(data []byte) error {
	*c = NewCurr(string(data))
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (c Currency) MarshalBinary() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (c *Currency) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*c, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Unknown, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (c Currency) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, c.bsonString(), nil
}

// parseBSONString parses a little-endian BSON string to currency.
func parseBSONString(data []byte) (Currency, error) {
	if len(data) < 4 {
		return Unknown, fmt.Errorf("%w: invalid data length %v", errInvalidCurrency, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Unknown, fmt.Errorf("%w: invalid string length %v", errInvalidCurrency, l)
	}
	if data[l+4-1] != 0 {
		return Unknown, fmt.Errorf("%w: invalid null terminator %v", errInvalidCurrency, data[l+4-1])
	}
	return NewCurr(string(data[4 : l+4-1])), nil
}

// bsonString returns the little-endian BSON string representation of the currency.
func (c Currency) bsonString() []byte {
	s := c.code
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// NULL is scanned as [Unknown].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	switch value := value.(type) {
	case string:
		*c = NewCurr(value)
	case []byte:
		*c = NewCurr(string(value))
	case nil:
		*c = Unknown
	default:
		return fmt.Errorf("converting from %T to %T: type %T is not supported", value, Unknown, value)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.code, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.code
	currlen := len(curr)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
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
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Currency code
	for i := range currlen {
		buf[pos] = curr[currlen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
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
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
