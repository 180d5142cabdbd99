package validator

import (
	"fmt"

	"halcyon-bio/halcyon/pkg/sap/policy"
)

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityError marks a policy the downstream aligner cannot run.
	SeverityError Severity = "error"
	// SeverityWarning marks a policy that runs but is probably not what
	// the author intended.
	SeverityWarning Severity = "warning"
)

// Issue is a single finding about a resolved policy.
type Issue struct {
	Severity Severity `json:"severity"`
	Field    string   `json:"field"`
	Message  string   `json:"message"`
}

// Result collects all findings for one policy.
type Result struct {
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Valid reports whether the policy passed. Under strict mode, warnings
// count as failures.
func (r *Result) Valid(strict bool) bool {
	if len(r.Errors) > 0 {
		return false
	}
	return !strict || len(r.Warnings) == 0
}

// Validator performs semantic checks on a resolved policy. The parser
// accepts everything the grammar accepts; the validator reports values the
// grammar allows but the seed-search machinery cannot use sensibly.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate inspects a resolved policy and accumulates all findings; unlike
// parsing it does not stop at the first problem.
func (v *Validator) Validate(pol *policy.Policy) *Result {
	r := &Result{}

	if pol.Seed.Mismatches < 0 || pol.Seed.Mismatches > 2 {
		r.addError("seed.mismatches",
			fmt.Sprintf("seed mismatches must be between 0 and 2, got %d", pol.Seed.Mismatches))
	}
	if pol.Seed.Length <= 0 {
		r.addError("seed.length",
			fmt.Sprintf("seed length must be positive, got %d", pol.Seed.Length))
	}
	if pol.PosMin < 0 {
		r.addError("posmin", fmt.Sprintf("posmin must be non-negative, got %g", pol.PosMin))
	}
	if pol.RowMin < 0 {
		r.addError("rowmin", fmt.Sprintf("rowmin must be non-negative, got %g", pol.RowMin))
	}

	if pol.SeedInterval.A <= 0 {
		r.addWarning("seed_interval.a",
			fmt.Sprintf("interval coefficient a is %g; seeds never advance and spacing degenerates to 1", pol.SeedInterval.A))
	}
	if pol.NCeil.Linear < 0 {
		r.addWarning("n_ceil.linear",
			fmt.Sprintf("N ceiling shrinks with read length (linear coefficient %g)", pol.NCeil.Linear))
	}
	if pol.ReadGap.Const < 0 || pol.ReadGap.Linear < 0 {
		r.addWarning("read_gap", "negative read-gap penalties reward gaps")
	}
	if pol.RefGap.Const < 0 || pol.RefGap.Linear < 0 {
		r.addWarning("ref_gap", "negative reference-gap penalties reward gaps")
	}
	if pol.RowMult < 1 {
		r.addWarning("rowmult",
			fmt.Sprintf("rowmult %g examines fewer extensions than seed positions found", pol.RowMult))
	}

	return r
}

func (r *Result) addError(field, message string) {
	r.Errors = append(r.Errors, Issue{Severity: SeverityError, Field: field, Message: message})
}

func (r *Result) addWarning(field, message string) {
	r.Warnings = append(r.Warnings, Issue{Severity: SeverityWarning, Field: field, Message: message})
}
