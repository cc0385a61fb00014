package failure

// CheckConstraint returns nil when satisfied is true, or an unsatisfied
// constraint failure carrying the explanation.
func CheckConstraint(satisfied bool, explanation string) error {
	if satisfied {
		return nil
	}
	return UnsatisfiedConstraint(explanation)
}

// WrapConstraint composes a lower-level check with added context. A nil
// inner error passes through; a failure becomes an unsatisfied constraint
// whose message is the explanation followed by the inner message, so
// high-level constraints keep low-level detail.
func WrapConstraint(inner error, explanation string) error {
	if inner == nil {
		return nil
	}
	return UnsatisfiedConstraint(explanation + "; " + inner.Error())
}
