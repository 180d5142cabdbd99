package parser

import (
	"strings"

	saperrors "halcyon-bio/halcyon/pkg/sap/errors"
)

// clause is one tag=value setting extracted from a policy string.
type clause struct {
	index int      // 1-based position within the policy string
	tag   string   // text left of the =
	toks  []string // 1-3 non-empty sub-tokens right of the =
}

// splitFields splits s on sep with delimiter-stream semantics: a trailing
// delimiter does not produce a final empty field, and empty input produces
// no fields at all. Interior empty fields are kept so callers can reject
// them.
func splitFields(s, sep string) []string {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, sep)
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// splitClauses splits a policy string into its ;-separated clauses.
// An empty policy string yields zero clauses: the pure-default policy.
func splitClauses(s string) []string {
	return splitFields(s, ";")
}

// splitTagValue splits a clause into the tag and value on either side of
// its = sign. A clause must be bisected by exactly one =.
func splitTagValue(raw string, index int, policy string) (tag, value string, err *saperrors.Error) {
	parts := splitFields(raw, "=")
	if len(parts) != 2 {
		return "", "", saperrors.New(saperrors.ErrorTypeMalformedClause, index, "", policy,
			"setting %d must be bisected by exactly one = sign", index)
	}
	return parts[0], parts[1], nil
}

// splitSubTokens splits a clause value into its comma-separated sub-tokens.
// A value carries between 1 and 3 sub-tokens, none of them empty.
func splitSubTokens(value string, index int, tag, policy string) ([]string, *saperrors.Error) {
	toks := splitFields(value, ",")
	if len(toks) == 0 {
		return nil, saperrors.New(saperrors.ErrorTypeEmptyToken, index, tag, policy,
			"value of %s must have at least 1 token", tag)
	}
	if len(toks) > 3 {
		return nil, saperrors.New(saperrors.ErrorTypeTooManyTokens, index, tag, policy,
			"value of %s must have at most 3 tokens, got %d", tag, len(toks))
	}
	for i, tok := range toks {
		if len(tok) == 0 {
			return nil, saperrors.New(saperrors.ErrorTypeEmptyToken, index, tag, policy,
				"token %d in value of %s is empty", i+1, tag)
		}
	}
	return toks, nil
}
