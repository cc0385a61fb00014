package failure

import (
	"errors"
	"fmt"
)

// Kind tags a classified error. The set is closed; downstream code must use
// the Is* predicates rather than comparing kinds directly.
type Kind int

const (
	// KindUnsatisfiedConstraint reports a declared constraint that the
	// current value does not meet.
	KindUnsatisfiedConstraint Kind = iota

	// KindValueNotFound reports a declared variable with no recorded value.
	KindValueNotFound

	// KindVariableNotFound reports a reference to an undeclared variable.
	KindVariableNotFound

	// KindTypeMismatch reports a value whose dynamic type is not the one a
	// consumer asked for.
	KindTypeMismatch
)

// String returns a diagnostic label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsatisfiedConstraint:
		return "unsatisfied constraint"
	case KindValueNotFound:
		return "value not found"
	case KindVariableNotFound:
		return "variable not found"
	case KindTypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

// ClassifiedError is an error tagged with a Kind. Generic error handling
// sees an ordinary error; classification-aware code uses the Is* predicates.
type ClassifiedError struct {
	kind     Kind
	message  string
	variable string
}

func (e *ClassifiedError) Error() string {
	return e.message
}

// Variable returns the variable name carried by kinds that name one
// (value-not-found, variable-not-found). Empty for other kinds.
func (e *ClassifiedError) Variable() string {
	return e.variable
}

// NewClassified creates a classified error of the given kind.
func NewClassified(kind Kind, message string) error {
	return &ClassifiedError{kind: kind, message: message}
}

// UnsatisfiedConstraint creates a classified error reporting that a
// constraint is not met. The explanation is carried verbatim.
func UnsatisfiedConstraint(explanation string) error {
	return &ClassifiedError{kind: KindUnsatisfiedConstraint, message: explanation}
}

// UnsatisfiedConstraintf is UnsatisfiedConstraint with formatting.
func UnsatisfiedConstraintf(format string, args ...any) error {
	return UnsatisfiedConstraint(fmt.Sprintf(format, args...))
}

// ValueNotFound creates a classified error reporting that no value is
// recorded for the named variable.
func ValueNotFound(name string) error {
	return &ClassifiedError{
		kind:     KindValueNotFound,
		message:  fmt.Sprintf("no value recorded for variable %q", name),
		variable: name,
	}
}

// VariableNotFound creates a classified error reporting a reference to a
// variable that was never declared.
func VariableNotFound(name string) error {
	return &ClassifiedError{
		kind:     KindVariableNotFound,
		message:  fmt.Sprintf("variable %q is not declared", name),
		variable: name,
	}
}

// TypeMismatch creates a classified error reporting a value of the wrong
// dynamic type.
func TypeMismatch(message string) error {
	return &ClassifiedError{kind: KindTypeMismatch, message: message}
}

// IsClassified returns true if the error carries a recognized kind tag.
// It distinguishes failures originating here from those of unrelated code.
func IsClassified(err error) bool {
	var classified *ClassifiedError
	return errors.As(err, &classified)
}

// IsUnsatisfiedConstraint returns true if the error is classified as an
// unsatisfied constraint.
func IsUnsatisfiedConstraint(err error) bool {
	return isKind(err, KindUnsatisfiedConstraint)
}

// IsValueNotFound returns true if the error is classified as a missing
// value for a declared variable.
func IsValueNotFound(err error) bool {
	return isKind(err, KindValueNotFound)
}

// IsVariableNotFound returns true if the error is classified as a reference
// to an undeclared variable.
func IsVariableNotFound(err error) bool {
	return isKind(err, KindVariableNotFound)
}

// IsTypeMismatch returns true if the error is classified as a dynamic type
// mismatch.
func IsTypeMismatch(err error) bool {
	return isKind(err, KindTypeMismatch)
}

func isKind(err error, kind Kind) bool {
	var classified *ClassifiedError
	if !errors.As(err, &classified) {
		return false
	}
	return classified.kind == kind
}
