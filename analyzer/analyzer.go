// Package analyzer decides whether every declared variable's current value
// satisfies its constraints, and if not, which variable fails first.
//
// The analysis is a pure function of a registry and a store: it mutates
// neither, holds no state between calls, and is deterministic for fixed
// inputs. Callers that regenerate values and retry do so outside this
// package.
package analyzer

import (
	"fmt"

	"github.com/c360studio/varcheck/variable"
)

// FirstUnsatisfied scans the registry's variables in declaration order and
// returns the name of the first one whose value violates a constraint,
// evaluating each variable's constraints in their declared order. The
// second return is false when every variable is satisfied.
//
// A declared variable with no recorded value aborts the analysis
// immediately: it panics with a ValueNotFoundViolation naming the variable,
// since an incomplete store is a caller defect, not a data outcome.
// Violations raised by cross-variable constraints propagate unchanged.
// Store entries for undeclared names are never inspected.
func FirstUnsatisfied(reg *variable.Registry, store variable.Store) (string, bool) {
	name, err := walk(reg, store)
	return name, err != nil
}

// AllSatisfied reports whether every declared variable's value satisfies
// all of its constraints.
func AllSatisfied(reg *variable.Registry, store variable.Store) bool {
	_, failed := FirstUnsatisfied(reg, store)
	return !failed
}

// Explain is FirstUnsatisfied with the failing constraint's classified
// failure attached, wrapped with the variable name. It returns ("", nil)
// when every variable is satisfied.
func Explain(reg *variable.Registry, store variable.Store) (string, error) {
	name, err := walk(reg, store)
	if err == nil {
		return "", nil
	}
	return name, fmt.Errorf("variable %q: %w", name, err)
}

// walk stops at the first failing constraint of the first failing variable.
func walk(reg *variable.Registry, store variable.Store) (string, error) {
	for _, v := range reg.Variables() {
		value := variable.MustValue(store, v.Name())
		for _, c := range v.Constraints() {
			if err := c.Satisfied(value, store); err != nil {
				return v.Name(), err
			}
		}
	}
	return "", nil
}
