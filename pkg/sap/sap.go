package sap

import (
	"halcyon-bio/halcyon/pkg/sap/parser"
	"halcyon-bio/halcyon/pkg/sap/policy"
)

// ParseAndResolve parses a policy string against the defaults for the given
// mode flags and returns the fully-resolved policy. An empty string yields
// the pure-default policy for those flags.
func ParseAndResolve(s string, local, noisyHomopolymer bool) (*policy.Policy, error) {
	p := parser.NewParser().
		WithLocalAlignment(local).
		WithNoisyHomopolymer(noisyHomopolymer)
	return p.Parse(s)
}

// Defaults returns the baseline policy for the given mode flags without
// applying any clauses.
func Defaults(local, noisyHomopolymer bool) *policy.Policy {
	return policy.Defaults(local, noisyHomopolymer)
}
