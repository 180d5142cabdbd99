// Package parser turns seed-alignment policy strings into resolved
// policies.
//
// A policy string is a ;-separated list of TAG=value clauses, where each
// value is 1-3 comma-separated sub-tokens:
//
//	MA=2;MMP=C6;SEED=0,22;IVAL=S,1.0,0.0
//
// Parsing starts from the mode-dependent defaults in
// halcyon-bio/halcyon/pkg/sap/policy and applies clauses in textual order,
// later clauses overwriting earlier ones. Each tag has its own sub-grammar
// and its own omission policy for trailing sub-tokens; see the handler
// table in handlers.go.
//
// Basic usage:
//
//	p := parser.NewParser().WithLocalAlignment(true)
//	pol, err := p.Parse("MA=4;SEED=0,20")
//	if err != nil {
//	    var perr *errors.Error
//	    if stderrors.As(err, &perr) {
//	        fmt.Println(perr.Clause, perr.Tag)
//	    }
//	}
package parser
