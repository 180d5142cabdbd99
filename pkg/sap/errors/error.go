package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes the type of error encountered while parsing a
// policy string.
type ErrorType string

const (
	ErrorTypeMalformedClause ErrorType = "malformed_clause"  // clause not bisected by exactly one =
	ErrorTypeEmptyToken      ErrorType = "empty_token"       // zero-length sub-token on the RHS
	ErrorTypeTooManyTokens   ErrorType = "too_many_tokens"   // more than 3 sub-tokens, or wrong count for the tag
	ErrorTypeUnknownTag      ErrorType = "unknown_tag"       // tag not in the policy grammar
	ErrorTypeCostModelPrefix ErrorType = "cost_model_prefix" // MMP/NP value not starting with C, Q or R
	ErrorTypeIntervalType    ErrorType = "interval_type"     // IVAL letter not L, S or C
	ErrorTypeNumericParse    ErrorType = "numeric_parse"     // sub-token not parseable as the field's numeric type
)

// Error is a rich parse error carrying the clause position within the
// policy string, the offending tag, and an optional suggestion.
// Parsing is fail-fast, so a parse produces at most one Error.
type Error struct {
	Type       ErrorType // category of error
	Message    string    // error message
	Clause     int       // 1-based index of the offending clause (0 if unknown)
	Tag        string    // tag of the offending clause, if one was recognized
	Policy     string    // the raw policy string being parsed
	Suggestion string    // suggested fix (optional)
}

// Error implements the error interface. It returns a formatted message
// with the clause position, the raw policy, and any suggestion.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Type, e.Message))

	if e.Clause > 0 {
		if e.Tag != "" {
			sb.WriteString(fmt.Sprintf("  --> clause %d (%s)\n", e.Clause, e.Tag))
		} else {
			sb.WriteString(fmt.Sprintf("  --> clause %d\n", e.Clause))
		}
	}

	sb.WriteString(fmt.Sprintf("  policy: %q\n", e.Policy))

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// New creates an Error for the given clause.
func New(errType ErrorType, clause int, tag, policy, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Clause:  clause,
		Tag:     tag,
		Policy:  policy,
	}
}

// WithSuggestion attaches a suggestion and returns the error.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}
