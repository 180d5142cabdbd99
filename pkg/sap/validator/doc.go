// Package validator performs semantic validation of resolved policies.
//
// The parser enforces the grammar; this package enforces meaning. It flags
// values the grammar admits but that no aligner run should use, such as a
// seed mismatch count outside [0, 2] or a non-positive seed length, and
// warns about values that are legal but suspicious, such as negative gap
// penalties. Unlike parsing, validation accumulates every finding instead
// of stopping at the first.
package validator
