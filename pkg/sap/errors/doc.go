// Package errors provides rich error types for policy parsing.
//
// Parse errors carry the 1-based clause index within the policy string, the
// offending tag, the raw input, and an optional suggestion. Parsing is
// fail-fast: the first error aborts the parse, so callers always receive a
// single *Error rather than a collection.
//
// Error format:
//
//	[unknown_tag] unexpected policy setting 'SEEDS'
//	  --> clause 2 (SEEDS)
//	  policy: "MA=2;SEEDS=0,22"
//	  = suggestion: Did you mean 'SEED'?
package errors
