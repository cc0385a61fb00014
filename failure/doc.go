// Package failure provides the error classification model shared by the
// validation core.
//
// Two channels carry failures, chosen by expectedness:
//
//   - Classified errors are returned as values. They report normal,
//     recoverable outcomes of validating data, such as a constraint not
//     being met. Classify them only through the Is* predicates; the kind
//     tag itself is not part of the contract.
//   - Violations are raised via panic. They report caller defects, such as
//     asking about a variable that was never declared, and are not meant to
//     be handled as ordinary control flow.
//
// Code that does not know about this package still handles classified
// errors correctly: they are plain non-nil errors.
package failure
