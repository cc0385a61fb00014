// Package match provides assertion helpers for code built on the validation
// core: a substring matcher for unsatisfied-constraint failures and panic
// matchers for contract violations.
//
// The Is*/Panics* functions are plain predicates so they compose with any
// test style; the Assert* wrappers add diagnostics for testify-flavored
// tests. Negation is the caller's `!` (or AssertNotUnsatisfiedContaining).
package match

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/varcheck/failure"
)

type tHelper interface {
	Helper()
}

// IsUnsatisfiedContaining reports whether err is a classified
// unsatisfied-constraint failure whose explanation contains fragment.
// Containment, not equality: a longer explanation still matches.
// Unclassified errors and other kinds never match.
func IsUnsatisfiedContaining(err error, fragment string) bool {
	if !failure.IsUnsatisfiedConstraint(err) {
		return false
	}
	return strings.Contains(err.Error(), fragment)
}

// AssertUnsatisfiedContaining fails the test unless err is an
// unsatisfied-constraint failure containing fragment.
func AssertUnsatisfiedContaining(t assert.TestingT, err error, fragment string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if IsUnsatisfiedContaining(err, fragment) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf(
		"expected an unsatisfied-constraint failure containing %q, got %v", fragment, err))
}

// AssertNotUnsatisfiedContaining fails the test if err is an
// unsatisfied-constraint failure containing fragment.
func AssertNotUnsatisfiedContaining(t assert.TestingT, err error, fragment string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !IsUnsatisfiedContaining(err, fragment) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf(
		"expected no unsatisfied-constraint failure containing %q, got %v", fragment, err))
}

// PanicsWithVariableNotFound reports whether fn panics with a
// VariableNotFoundViolation naming exactly name. No panic, a panic with any
// other value, or a violation naming a different variable are all
// non-matches; the panic is swallowed either way. Only the first panic
// raised inside fn is observable.
func PanicsWithVariableNotFound(name string, fn func()) bool {
	matched := false
	func() {
		defer func() {
			if v, ok := recover().(*failure.VariableNotFoundViolation); ok {
				matched = v.VariableName() == name
			}
		}()
		fn()
	}()
	return matched
}

// PanicsWithValueNotFound reports whether fn panics with a
// ValueNotFoundViolation naming exactly name. Same tolerance as
// PanicsWithVariableNotFound.
func PanicsWithValueNotFound(name string, fn func()) bool {
	matched := false
	func() {
		defer func() {
			if v, ok := recover().(*failure.ValueNotFoundViolation); ok {
				matched = v.VariableName() == name
			}
		}()
		fn()
	}()
	return matched
}

// AssertPanicsWithVariableNotFound fails the test unless fn panics with a
// VariableNotFoundViolation naming exactly name.
func AssertPanicsWithVariableNotFound(t assert.TestingT, name string, fn func()) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if PanicsWithVariableNotFound(name, fn) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf(
		"expected a panic with VariableNotFoundViolation(%q)", name))
}

// AssertPanicsWithValueNotFound fails the test unless fn panics with a
// ValueNotFoundViolation naming exactly name.
func AssertPanicsWithValueNotFound(t assert.TestingT, name string, fn func()) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if PanicsWithValueNotFound(name, fn) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf(
		"expected a panic with ValueNotFoundViolation(%q)", name))
}
