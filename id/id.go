// Package id provides string identifiers typed by the entity they identify.
//
// An ID[Account] and an ID[Order] share the same representation but are
// distinct types, so passing one where the other is expected does not compile.
package id

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID is an opaque string identifier of an entity of type T.
// T is only a marker; it is never instantiated.
type ID[T any] string

// Identifiable is implemented by entities that expose their own typed ID.
type Identifiable[T any] interface {
	ID() ID[T]
}

// New returns an identifier with the given value.
func New[T any](value string) ID[T] {
	return ID[T](value)
}

// Unique returns a new identifier holding an upper-case random UUID.
func Unique[T any]() ID[T] {
	return ID[T](strings.ToUpper(uuid.NewString()))
}

// String implements the [fmt.Stringer] interface.
func (i ID[T]) String() string {
	return string(i)
}

// IsZero returns true if the identifier is empty.
func (i ID[T]) IsZero() bool {
	return i == ""
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// JSON encodes an ID as a single string.
func (i ID[T]) MarshalText() ([]byte, error) {
	return []byte(i), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ID[T]) UnmarshalText(text []byte) error {
	*i = ID[T](text)
	return nil
}

// Scan implements the [sql.Scanner] interface.
func (i *ID[T]) Scan(value any) error {
	switch value := value.(type) {
	case string:
		*i = ID[T](value)
	case []byte:
		*i = ID[T](value)
	default:
		return fmt.Errorf("converting from %T to %T: type is not supported", value, *i)
	}
	return nil
}

// Value implements the [driver.Valuer] interface.
func (i ID[T]) Value() (driver.Value, error) {
	return string(i), nil
}
