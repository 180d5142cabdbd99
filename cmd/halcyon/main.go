// Halcyon is a toolkit for authoring, resolving, and linting the
// seed-alignment scoring policies used by short-read aligners.
//
// A policy is a compact ;-separated string of TAG=value clauses that
// configures the aligner's scoring model (match bonus, mismatch/N cost
// models, gap penalties, score thresholds) and its seed-extraction
// strategy (seed geometry, interval function, position-search tunables).
//
// Usage:
//
//	# Resolve a policy string against local-alignment defaults
//	halcyon resolve "MA=4;SEED=0,20" --local
//
//	# Show the pure defaults for a mode as YAML
//	halcyon resolve --local --output yaml
//
//	# Lint every policy in a policy-set file
//	halcyon lint --file policies.yaml
//
//	# Re-lint on every save
//	halcyon watch --file policies.yaml
//
//	# Show version information
//	halcyon version
package main

func main() {
	Execute()
}
