package parser

import (
	saperrors "halcyon-bio/halcyon/pkg/sap/errors"
	"halcyon-bio/halcyon/pkg/sap/policy"
)

// Parser parses seed-alignment policy strings into resolved policies.
// The two mode flags select the default tables every parse starts from;
// they are never mutated by a parse.
type Parser struct {
	local            bool // local-alignment mode
	noisyHomopolymer bool // relaxed gap defaults for homopolymer-noisy technologies
}

// NewParser creates a parser for global alignment with standard gap
// defaults.
func NewParser() *Parser {
	return &Parser{}
}

// WithLocalAlignment selects local-alignment defaults (non-zero match
// bonus, zero score floor).
func (p *Parser) WithLocalAlignment(local bool) *Parser {
	p.local = local
	return p
}

// WithNoisyHomopolymer selects relaxed gap-penalty defaults.
func (p *Parser) WithNoisyHomopolymer(noisy bool) *Parser {
	p.noisyHomopolymer = noisy
	return p
}

// Parse resolves a policy string of the form TAG=val;TAG=val,val against
// the defaults for the parser's mode flags. Clauses are applied in textual
// order, later clauses overwriting earlier ones. An empty string yields the
// pure-default policy.
//
// Parsing is fail-fast and atomic: the first malformed clause aborts the
// parse with a *errors.Error and no policy is returned.
func (p *Parser) Parse(s string) (*policy.Policy, error) {
	b := &builder{
		pol:              policy.Defaults(p.local, p.noisyHomopolymer),
		noisyHomopolymer: p.noisyHomopolymer,
		raw:              s,
	}

	for i, rawClause := range splitClauses(s) {
		c, err := tokenizeClause(rawClause, i+1, s)
		if err != nil {
			return nil, err
		}

		handle, ok := handlers[c.tag]
		if !ok {
			return nil, saperrors.New(saperrors.ErrorTypeUnknownTag, c.index, c.tag, s,
				"unexpected policy setting '%s'", c.tag).
				WithSuggestion(saperrors.SuggestTag(c.tag, Tags()))
		}

		if err := handle(b, c); err != nil {
			return nil, err
		}
	}

	return b.pol, nil
}

// tokenizeClause splits one raw clause into its tag and sub-tokens.
func tokenizeClause(raw string, index int, policyStr string) (*clause, *saperrors.Error) {
	tag, value, err := splitTagValue(raw, index, policyStr)
	if err != nil {
		return nil, err
	}

	toks, err := splitSubTokens(value, index, tag, policyStr)
	if err != nil {
		return nil, err
	}

	return &clause{index: index, tag: tag, toks: toks}, nil
}

// builder accumulates validated clause effects onto a working policy.
// The policy is handed out only after the whole string parses.
type builder struct {
	pol              *policy.Policy
	noisyHomopolymer bool
	raw              string
}
