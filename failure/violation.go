package failure

import "fmt"

// Violations signal caller defects rather than data outcomes. They are
// delivered via panic, carry the offending variable name, and are deliberately
// distinct types from ClassifiedError so they can never be mistaken for an
// expected validation result.

// VariableNotFoundViolation is raised when code asks about a variable that
// was never declared in the registry.
type VariableNotFoundViolation struct {
	name string
}

// NewVariableNotFoundViolation creates a violation naming the undeclared
// variable. Callers raise it with panic.
func NewVariableNotFoundViolation(name string) *VariableNotFoundViolation {
	return &VariableNotFoundViolation{name: name}
}

func (v *VariableNotFoundViolation) Error() string {
	return fmt.Sprintf("contract violation: variable %q was never declared", v.name)
}

// VariableName returns the offending variable name.
func (v *VariableNotFoundViolation) VariableName() string {
	return v.name
}

// ValueNotFoundViolation is raised when code expects a value for a declared
// variable and the store has none. This indicates the caller assembled an
// incomplete value store, not a data-validity problem.
type ValueNotFoundViolation struct {
	name string
}

// NewValueNotFoundViolation creates a violation naming the variable whose
// value is missing. Callers raise it with panic.
func NewValueNotFoundViolation(name string) *ValueNotFoundViolation {
	return &ValueNotFoundViolation{name: name}
}

func (v *ValueNotFoundViolation) Error() string {
	return fmt.Sprintf("contract violation: no value recorded for declared variable %q", v.name)
}

// VariableName returns the offending variable name.
func (v *ValueNotFoundViolation) VariableName() string {
	return v.name
}
