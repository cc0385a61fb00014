package analyzer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/varcheck/failure"
	"github.com/c360studio/varcheck/match"
	"github.com/c360studio/varcheck/variable"
)

// oneOf constrains a value to a fixed set of permitted options.
func oneOf(options ...any) variable.Constraint {
	return variable.ConstraintFunc(func(value any, _ variable.Store) error {
		for _, opt := range options {
			if value == opt {
				return nil
			}
		}
		return failure.UnsatisfiedConstraintf("value %v is not one of the permitted options", value)
	})
}

// hundredOptions returns the permitted set used by the option scenarios.
func hundredOptions() []any {
	options := make([]any, 100)
	for i := range options {
		options[i] = i * 3
	}
	return options
}

func declare(t *testing.T, r *variable.Registry, name string, constraints ...variable.Constraint) {
	t.Helper()
	_, err := r.Declare(name, constraints...)
	require.NoError(t, err)
}

func TestEmptyRegistryAlwaysSatisfied(t *testing.T) {
	reg := variable.NewRegistry()

	assert.True(t, AllSatisfied(reg, variable.Values{}))
	assert.True(t, AllSatisfied(reg, variable.Values{"stray": 1, "noise": "x"}))

	name, failed := FirstUnsatisfied(reg, variable.Values{"stray": 1})
	assert.False(t, failed)
	assert.Empty(t, name)
}

func TestAllWithinOptions(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))
	declare(t, reg, "b", oneOf(options...))

	store := variable.Values{"a": options[4], "b": options[53]}

	name, failed := FirstUnsatisfied(reg, store)
	assert.False(t, failed)
	assert.Empty(t, name)
	assert.True(t, AllSatisfied(reg, store))
}

func TestSingleVariableOutsideOptions(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))
	declare(t, reg, "b", oneOf(options...))

	store := variable.Values{"a": options[4], "b": 100000}

	name, failed := FirstUnsatisfied(reg, store)
	assert.True(t, failed)
	assert.Equal(t, "b", name)
}

func TestMissingValueAbortsAnalysis(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))
	declare(t, reg, "b", oneOf(options...))

	// "a" is fully valid; the missing "b" still aborts the whole run.
	store := variable.Values{"a": options[4]}

	match.AssertPanicsWithValueNotFound(t, "b", func() {
		FirstUnsatisfied(reg, store)
	})
}

func TestExtraStoreEntriesIgnored(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))
	declare(t, reg, "b", oneOf(options...))

	// "c" is not declared; its value is never inspected, even though it
	// would violate the options constraint.
	store := variable.Values{"a": options[30], "b": options[40], "c": -999}

	assert.True(t, AllSatisfied(reg, store))
}

func TestFirstDeclaredVariableReported(t *testing.T) {
	never := variable.ConstraintFunc(func(any, variable.Store) error {
		return failure.UnsatisfiedConstraint("never satisfied")
	})

	reg := variable.NewRegistry()
	declare(t, reg, "late", never)
	declare(t, reg, "early", never)

	store := variable.Values{"late": 1, "early": 2}

	// Both fail; declaration order, not name order, breaks the tie.
	name, failed := FirstUnsatisfied(reg, store)
	require.True(t, failed)
	assert.Equal(t, "late", name)
}

func TestFirstFailingConstraintStopsEvaluation(t *testing.T) {
	var evaluated []string
	record := func(label string, err error) variable.Constraint {
		return variable.ConstraintFunc(func(any, variable.Store) error {
			evaluated = append(evaluated, label)
			return err
		})
	}

	reg := variable.NewRegistry()
	declare(t, reg, "a",
		record("a1", nil),
		record("a2", failure.UnsatisfiedConstraint("a2 failed")),
		record("a3", nil),
	)
	declare(t, reg, "b", record("b1", failure.UnsatisfiedConstraint("b1 failed")))

	store := variable.Values{"a": 1, "b": 2}

	name, failed := FirstUnsatisfied(reg, store)
	require.True(t, failed)
	assert.Equal(t, "a", name)
	// a3 is skipped once a2 fails, and b is never scanned.
	assert.Equal(t, []string{"a1", "a2"}, evaluated)
}

func TestCrossVariableConstraint(t *testing.T) {
	twiceOf := func(other string) variable.Constraint {
		return variable.ConstraintFunc(func(value any, store variable.Store) error {
			base, err := variable.ValueAs[int](store, other)
			if err != nil {
				return err
			}
			return failure.CheckConstraint(value == base*2,
				fmt.Sprintf("must be twice the value of %q", other))
		})
	}

	reg := variable.NewRegistry()
	declare(t, reg, "a")
	declare(t, reg, "b", twiceOf("a"))

	assert.True(t, AllSatisfied(reg, variable.Values{"a": 21, "b": 42}))

	name, failed := FirstUnsatisfied(reg, variable.Values{"a": 21, "b": 43})
	require.True(t, failed)
	assert.Equal(t, "b", name)
}

func TestConstraintRaisedViolationPropagates(t *testing.T) {
	needs := func(other string) variable.Constraint {
		return variable.ConstraintFunc(func(value any, store variable.Store) error {
			base := variable.MustValue(store, other)
			return failure.CheckConstraint(value == base, "must mirror "+other)
		})
	}

	reg := variable.NewRegistry()
	declare(t, reg, "b", needs("a"))

	// "b" has a value, but its constraint reaches for the undeclared-in-store
	// "a"; the violation names "a", not "b", and passes through untouched.
	match.AssertPanicsWithValueNotFound(t, "a", func() {
		FirstUnsatisfied(reg, variable.Values{"b": 7})
	})
}

func TestDeterministicAcrossCalls(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))
	declare(t, reg, "b", oneOf(options...))
	declare(t, reg, "c", oneOf(options...))

	store := variable.Values{"a": options[1], "b": 100000, "c": 100001}

	for i := 0; i < 10; i++ {
		name, failed := FirstUnsatisfied(reg, store)
		require.True(t, failed)
		require.Equal(t, "b", name)
	}
}

func TestExplain(t *testing.T) {
	options := hundredOptions()
	reg := variable.NewRegistry()
	declare(t, reg, "a", oneOf(options...))

	name, err := Explain(reg, variable.Values{"a": options[2]})
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = Explain(reg, variable.Values{"a": 100000})
	require.Error(t, err)
	assert.Equal(t, "a", name)
	assert.Contains(t, err.Error(), `variable "a"`)
	// Wrapping keeps the classification and the constraint's own detail.
	match.AssertUnsatisfiedContaining(t, err, "not one of the permitted options")
}

func TestUnconstrainedVariable(t *testing.T) {
	reg := variable.NewRegistry()
	declare(t, reg, "free")

	// Any value at all satisfies a variable without constraints, but a
	// value must still exist.
	assert.True(t, AllSatisfied(reg, variable.Values{"free": struct{}{}}))
	match.AssertPanicsWithValueNotFound(t, "free", func() {
		AllSatisfied(reg, variable.Values{})
	})
}
