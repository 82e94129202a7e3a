/*
Package money implements monetary amounts tagged with a currency.
It leverages the [decimal] package's capabilities for handling exact decimal
numbers and combines it with a [Currency] tag, so that amounts in different
currencies can never be silently mixed.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exact decimal storage: "12.30" stays "12.30" through arithmetic and encoding
  - Arithmetic and comparison operations that refuse to mix currencies
  - Locale-aware formatting with localized currency symbols
  - Round-trip safe JSON, text, binary, BSON and SQL encodings

# Representation

The package consists of two main structs: Amount and Currency.
An Amount represents a monetary value and consists of a Currency and
a decimal.Decimal value.
A Currency is an upper-cased alphabetic code such as "EUR".
Codes are not validated against ISO 4217: an unrecognized code is a valid
tag whose localized name and symbol fall back to the code itself.

# Operations

Amounts support Add, Sub, Mul, Quo, Rat, Neg, Abs and comparisons.
Operations that combine two amounts require both to be in the same currency.
Mixing currencies is a programming error, not a runtime condition: such
operations panic with an error wrapping [ErrCurrencyMismatch].
Scaling by a factor or negating never changes the currency.

# Formatting

[Amount.String] returns a locale-independent form such as "EUR 12.30".
A [Locale] renders amounts for display: grouping and decimal separators,
the localized currency symbol and its placement come from CLDR, and the
number of digits after the decimal point follows the currency:

	l := money.MustParseLocale("en-US")
	l.Format(a)                 // "$1,234.50"
	l.FormatOptionalDecimals(a) // "$12" for a whole amount

Currency names and symbols are resolved by a [Lookup], which can be replaced
with [WithLookup].

# Errors

Errors are returned by parsing and decoding functions and by arithmetic
operations when the [decimal] package cannot represent the result
(coefficient overflow, division by zero).
Currency mismatches panic.
*/
package money
