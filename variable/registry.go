package variable

import (
	"fmt"

	"github.com/c360studio/varcheck/failure"
)

// Registry is the ordered, name-unique catalog of declared variables.
// Iteration order is declaration order and is stable across calls.
//
// Registry is not internally synchronized. Concurrent readers are safe
// provided no goroutine declares variables during the reads.
type Registry struct {
	order []string
	vars  map[string]*Variable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{vars: make(map[string]*Variable)}
}

// Declare adds a variable with the given name and constraints. Names are
// unique within a registry; declaring the same name twice is an error.
func (r *Registry) Declare(name string, constraints ...Constraint) (*Variable, error) {
	if _, ok := r.vars[name]; ok {
		return nil, fmt.Errorf("variable %q already declared", name)
	}
	v := New(name, constraints...)
	r.order = append(r.order, name)
	r.vars[name] = v
	return v, nil
}

// Has reports whether a variable with the given name is declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.vars[name]
	return ok
}

// Variable returns the declared variable with the given name. Asking for a
// name that was never declared is a caller defect: it panics with a
// VariableNotFoundViolation naming the variable.
func (r *Registry) Variable(name string) *Variable {
	v, ok := r.vars[name]
	if !ok {
		panic(failure.NewVariableNotFoundViolation(name))
	}
	return v
}

// Variables returns the declared variables in declaration order.
func (r *Registry) Variables() []*Variable {
	vars := make([]*Variable, 0, len(r.order))
	for _, name := range r.order {
		vars = append(vars, r.vars[name])
	}
	return vars
}

// Names returns the declared names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of declared variables.
func (r *Registry) Len() int {
	return len(r.order)
}
