package variable

import (
	"fmt"

	"github.com/c360studio/varcheck/failure"
)

// Store is a read-only view of the currently known values, keyed by
// variable name. It may omit values for declared variables and may hold
// entries for names no registry declares.
//
// The view is read-only by type: constraints and the analyzer receive a
// Store and cannot mutate the underlying values through it.
type Store interface {
	// Value returns the value recorded for name, and whether one exists.
	Value(name string) (any, bool)
}

// Values is a map-backed Store.
type Values map[string]any

// Value implements Store.
func (v Values) Value(name string) (any, bool) {
	value, ok := v[name]
	return value, ok
}

// MustValue returns the value recorded for name. Expecting a value that the
// store does not hold is a caller defect: it panics with a
// ValueNotFoundViolation naming the variable.
func MustValue(store Store, name string) any {
	value, ok := store.Value(name)
	if !ok {
		panic(failure.NewValueNotFoundViolation(name))
	}
	return value
}

// ValueAs returns the value recorded for name, asserting its dynamic type.
// A missing value panics like MustValue; a value of the wrong type returns
// a classified type-mismatch failure.
func ValueAs[T any](store Store, name string) (T, error) {
	value := MustValue(store, name)
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, failure.TypeMismatch(
			fmt.Sprintf("variable %q: want %T, got %T", name, zero, value))
	}
	return typed, nil
}
