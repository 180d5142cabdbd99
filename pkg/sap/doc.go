// Package sap provides parsing and resolution for seed-alignment policies
// (SAP): compact textual descriptions of the scoring model and seed
// geometry used by short-read aligners.
//
// A policy string looks like:
//
//	MA=2;MMP=C6;RDG=5,3;MIN=0,0.66;SEED=0,22;IVAL=S,1.0,0.0
//
// # Architecture
//
// The package is organized into subpackages:
//
//   - policy: the resolved policy value and its mode-dependent defaults
//   - parser: tokenization and table-driven clause interpretation
//   - validator: semantic checks on resolved policies (lint layer)
//   - errors: rich error types with clause positions and suggestions
//
// # Basic Usage
//
// Resolve a policy string:
//
//	pol, err := sap.ParseAndResolve("MA=4;SEED=0,20", true, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("seed length:", pol.Seed.Length)
//
// Or obtain the pure defaults for a pair of mode flags:
//
//	pol := sap.Defaults(false, false)
//
// # Grammar
//
// A policy is clause (';' clause)* where clause = tag '=' value and value
// is 1-3 comma-separated non-empty tokens. Recognized tags: MA, SNP, MMP,
// NP, RDG, RFG, MIN, FL, NCEIL, POSF, ROWM, SEED, IVAL. Each tag validates
// its own sub-grammar; anything else is rejected with a typed error.
//
// # Error Handling
//
// Parsing is fail-fast and atomic: the first malformed clause aborts the
// parse and no partial policy escapes. Errors carry the 1-based clause
// index, the offending tag, and the raw input:
//
//	[numeric_parse] token "x" in value of MA is not a valid integer
//	  --> clause 1 (MA)
//	  policy: "MA=x"
package sap
