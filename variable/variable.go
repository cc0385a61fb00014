package variable

// Constraint limits the values a variable may take. Satisfied returns nil
// when the candidate value meets the constraint, or a classified failure
// explaining why it does not. The store gives read access to every
// currently known value, enabling cross-variable constraints.
//
// Implementations must be pure: no side effects, and deterministic for a
// fixed value and store.
type Constraint interface {
	Satisfied(value any, store Store) error
}

// ConstraintFunc adapts a function to the Constraint interface.
type ConstraintFunc func(value any, store Store) error

// Satisfied calls f(value, store).
func (f ConstraintFunc) Satisfied(value any, store Store) error {
	return f(value, store)
}

// Variable is a named entity with zero or more constraints, evaluated in
// the order they were added. A variable without constraints is trivially
// satisfied by any value.
type Variable struct {
	name        string
	constraints []Constraint
}

// New creates a variable with the given name and initial constraints.
func New(name string, constraints ...Constraint) *Variable {
	return &Variable{name: name, constraints: constraints}
}

// Name returns the variable's name, unique within its registry.
func (v *Variable) Name() string {
	return v.name
}

// Constraints returns the variable's constraints in evaluation order.
func (v *Variable) Constraints() []Constraint {
	return v.constraints
}

// AddConstraint appends constraints to the evaluation order.
func (v *Variable) AddConstraint(constraints ...Constraint) {
	v.constraints = append(v.constraints, constraints...)
}
