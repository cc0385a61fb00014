// Package variable provides the data model the validation core operates on:
// declared variables with ordered constraints, an insertion-ordered registry,
// and a read-only store of currently known values.
//
// Constraints are capabilities: a constraint receives the candidate value
// and read access to the whole store, so a variable's validity may depend on
// another variable's current value. Constraints must be pure and
// deterministic for fixed inputs.
//
// Registry iteration order is declaration order and is stable across calls;
// the analyzer's tie-break on failure depends on it.
package variable
