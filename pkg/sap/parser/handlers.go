package parser

import (
	"sort"
	"strconv"

	saperrors "halcyon-bio/halcyon/pkg/sap/errors"
	"halcyon-bio/halcyon/pkg/sap/policy"
)

// clauseHandler validates one clause's sub-tokens against the tag's
// sub-grammar and overwrites the corresponding policy fields.
type clauseHandler func(b *builder, c *clause) *saperrors.Error

// handlers maps each recognized tag to its handler. Each handler owns its
// tag's omission policy: some reset omitted sub-tokens to a fixed default,
// others keep the previously resolved value.
var handlers = map[string]clauseHandler{
	"MA":    handleMatchBonus,
	"SNP":   handleSNPPenalty,
	"MMP":   handleMismatchPenalty,
	"NP":    handleNPenalty,
	"RDG":   handleReadGap,
	"RFG":   handleRefGap,
	"MIN":   handleMinScore,
	"FL":    handleScoreFloor,
	"NCEIL": handleNCeil,
	"POSF":  handlePosFunc,
	"ROWM":  handleRowFunc,
	"SEED":  handleSeed,
	"IVAL":  handleInterval,
}

// Tags returns the recognized policy tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(handlers))
	for tag := range handlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// MA=xx: match bonus. Exactly one integer.
func handleMatchBonus(b *builder, c *clause) *saperrors.Error {
	if err := b.exactTokens(c, 1); err != nil {
		return err
	}
	v, err := b.parseInt(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.MatchBonus.Penalty = v
	return nil
}

// SNP=xx: SNP penalty. Exactly one integer.
func handleSNPPenalty(b *builder, c *clause) *saperrors.Error {
	if err := b.exactTokens(c, 1); err != nil {
		return err
	}
	v, err := b.parseInt(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.SNPPenalty = v
	return nil
}

// MMP={Cxx|Q|R}: mismatch cost model.
func handleMismatchPenalty(b *builder, c *clause) *saperrors.Error {
	return b.parseCostModel(c, &b.pol.MismatchPenalty)
}

// NP={Cxx|Q|R}: N-position cost model. Same sub-grammar as MMP.
func handleNPenalty(b *builder, c *clause) *saperrors.Error {
	return b.parseCostModel(c, &b.pol.NPenalty)
}

// RDG=xx,yy: read gap open and extension penalties. An omitted token
// resets to the homopolymer-mode-dependent default rather than keeping the
// previously resolved value.
func handleReadGap(b *builder, c *clause) *saperrors.Error {
	gap, err := b.parseGap(c, defaultReadGap(b.noisyHomopolymer))
	if err != nil {
		return err
	}
	b.pol.ReadGap = gap
	return nil
}

// RFG=xx,yy: reference gap open and extension penalties. Same omission
// policy as RDG.
func handleRefGap(b *builder, c *clause) *saperrors.Error {
	gap, err := b.parseGap(c, defaultRefGap(b.noisyHomopolymer))
	if err != nil {
		return err
	}
	b.pol.RefGap = gap
	return nil
}

// MIN=xx,yy: minimum-score function. Omitted tokens keep the previously
// resolved value.
func handleMinScore(b *builder, c *clause) *saperrors.Error {
	return b.parseLinearInPlace(c, &b.pol.MinScore)
}

// FL=xx,yy: local-alignment score floor. Same omission policy as MIN.
func handleScoreFloor(b *builder, c *clause) *saperrors.Error {
	return b.parseLinearInPlace(c, &b.pol.ScoreFloor)
}

// NCEIL=xx,yy: N-ceiling function. The constant keeps the previously
// resolved value when omitted; an omitted linear coefficient resets to the
// global default.
func handleNCeil(b *builder, c *clause) *saperrors.Error {
	if err := b.maxTokens(c, 2); err != nil {
		return err
	}
	v, err := b.parseFloat(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.NCeil.Const = v
	if len(c.toks) >= 2 {
		v, err := b.parseFloat(c, c.toks[1])
		if err != nil {
			return err
		}
		b.pol.NCeil.Linear = v
	} else {
		b.pol.NCeil.Linear = policy.DefaultNCeilLinear
	}
	return nil
}

// POSF=xx,yy: posmin and posfrac. Omitted tokens keep the previously
// resolved value.
func handlePosFunc(b *builder, c *clause) *saperrors.Error {
	if err := b.maxTokens(c, 2); err != nil {
		return err
	}
	v, err := b.parseFloat(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.PosMin = v
	if len(c.toks) >= 2 {
		v, err := b.parseFloat(c, c.toks[1])
		if err != nil {
			return err
		}
		b.pol.PosFrac = v
	}
	return nil
}

// ROWM=xx,yy: rowmult then rowmin, in that token order. Omitted tokens
// keep the previously resolved value.
func handleRowFunc(b *builder, c *clause) *saperrors.Error {
	if err := b.maxTokens(c, 2); err != nil {
		return err
	}
	v, err := b.parseFloat(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.RowMult = v
	if len(c.toks) >= 2 {
		v, err := b.parseFloat(c, c.toks[1])
		if err != nil {
			return err
		}
		b.pol.RowMin = v
	}
	return nil
}

// SEED=mm,len,period: seed geometry. The mismatch count keeps the
// previously resolved value when omitted; omitted length and period reset
// to the global defaults.
func handleSeed(b *builder, c *clause) *saperrors.Error {
	v, err := b.parseInt(c, c.toks[0])
	if err != nil {
		return err
	}
	b.pol.Seed.Mismatches = v
	if len(c.toks) >= 2 {
		v, err := b.parseInt(c, c.toks[1])
		if err != nil {
			return err
		}
		b.pol.Seed.Length = v
	} else {
		b.pol.Seed.Length = policy.DefaultSeedLength
	}
	if len(c.toks) >= 3 {
		v, err := b.parseInt(c, c.toks[2])
		if err != nil {
			return err
		}
		b.pol.Seed.Period = v
	} else {
		b.pol.Seed.Period = policy.DefaultSeedPeriod
	}
	return nil
}

// IVAL={L|S|C},a,b: seed-interval function. An omitted a resets to 1.0 and
// an omitted b to 0.0.
func handleInterval(b *builder, c *clause) *saperrors.Error {
	switch c.toks[0][0] {
	case 'L':
		b.pol.SeedInterval.Type = policy.IntervalLinear
	case 'S':
		b.pol.SeedInterval.Type = policy.IntervalSquareRoot
	case 'C':
		b.pol.SeedInterval.Type = policy.IntervalCubeRoot
	default:
		return saperrors.New(saperrors.ErrorTypeIntervalType, c.index, c.tag, b.raw,
			"value of %s must start with L, S or C", c.tag)
	}
	if len(c.toks) >= 2 {
		v, err := b.parseFloat(c, c.toks[1])
		if err != nil {
			return err
		}
		b.pol.SeedInterval.A = v
	} else {
		b.pol.SeedInterval.A = 1.0
	}
	if len(c.toks) >= 3 {
		v, err := b.parseFloat(c, c.toks[2])
		if err != nil {
			return err
		}
		b.pol.SeedInterval.B = v
	} else {
		b.pol.SeedInterval.B = 0.0
	}
	return nil
}

// parseCostModel applies the shared MMP/NP sub-grammar to dst: 'C' followed
// by an integer selects a constant penalty, 'Q' the quality model and 'R'
// the rounded-quality model. Q and R leave the stored constant untouched.
func (b *builder) parseCostModel(c *clause, dst *policy.CostModel) *saperrors.Error {
	if err := b.exactTokens(c, 1); err != nil {
		return err
	}
	tok := c.toks[0]
	switch tok[0] {
	case 'C':
		v, err := b.parseInt(c, tok[1:])
		if err != nil {
			return err
		}
		dst.Type = policy.CostConstant
		dst.Penalty = v
	case 'Q':
		dst.Type = policy.CostQuality
	case 'R':
		dst.Type = policy.CostRoundedQuality
	default:
		return saperrors.New(saperrors.ErrorTypeCostModelPrefix, c.index, c.tag, b.raw,
			"value of %s must start with C, Q or R", c.tag)
	}
	return nil
}

// parseGap applies the shared RDG/RFG sub-grammar: up to two integers,
// starting from the supplied mode default so omitted tokens reset.
func (b *builder) parseGap(c *clause, gap policy.LinearFunc) (policy.LinearFunc, *saperrors.Error) {
	if err := b.maxTokens(c, 2); err != nil {
		return policy.LinearFunc{}, err
	}
	v, err := b.parseInt(c, c.toks[0])
	if err != nil {
		return policy.LinearFunc{}, err
	}
	gap.Const = float64(v)
	if len(c.toks) >= 2 {
		v, err := b.parseInt(c, c.toks[1])
		if err != nil {
			return policy.LinearFunc{}, err
		}
		gap.Linear = float64(v)
	}
	return gap, nil
}

// parseLinearInPlace applies the shared MIN/FL sub-grammar: up to two
// floats, overwriting only the coefficients that are present.
func (b *builder) parseLinearInPlace(c *clause, fn *policy.LinearFunc) *saperrors.Error {
	if err := b.maxTokens(c, 2); err != nil {
		return err
	}
	v, err := b.parseFloat(c, c.toks[0])
	if err != nil {
		return err
	}
	fn.Const = v
	if len(c.toks) >= 2 {
		v, err := b.parseFloat(c, c.toks[1])
		if err != nil {
			return err
		}
		fn.Linear = v
	}
	return nil
}

func defaultReadGap(noisyHomopolymer bool) policy.LinearFunc {
	if noisyHomopolymer {
		return policy.LinearFunc{Const: policy.DefaultReadGapOpenHomopolymer, Linear: policy.DefaultReadGapExtendHomopolymer}
	}
	return policy.LinearFunc{Const: policy.DefaultReadGapOpen, Linear: policy.DefaultReadGapExtend}
}

func defaultRefGap(noisyHomopolymer bool) policy.LinearFunc {
	if noisyHomopolymer {
		return policy.LinearFunc{Const: policy.DefaultRefGapOpenHomopolymer, Linear: policy.DefaultRefGapExtendHomopolymer}
	}
	return policy.LinearFunc{Const: policy.DefaultRefGapOpen, Linear: policy.DefaultRefGapExtend}
}

// exactTokens rejects a clause whose value does not have exactly n
// sub-tokens.
func (b *builder) exactTokens(c *clause, n int) *saperrors.Error {
	if len(c.toks) != n {
		return saperrors.New(saperrors.ErrorTypeTooManyTokens, c.index, c.tag, b.raw,
			"value of %s must have exactly %d token(s), got %d", c.tag, n, len(c.toks))
	}
	return nil
}

// maxTokens rejects a clause whose value has more than n sub-tokens.
func (b *builder) maxTokens(c *clause, n int) *saperrors.Error {
	if len(c.toks) > n {
		return saperrors.New(saperrors.ErrorTypeTooManyTokens, c.index, c.tag, b.raw,
			"value of %s must have at most %d tokens, got %d", c.tag, n, len(c.toks))
	}
	return nil
}

// parseInt parses an integer-typed sub-token.
func (b *builder) parseInt(c *clause, tok string) (int, *saperrors.Error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, saperrors.New(saperrors.ErrorTypeNumericParse, c.index, c.tag, b.raw,
			"token %q in value of %s is not a valid integer", tok, c.tag)
	}
	return v, nil
}

// parseFloat parses a float-typed sub-token.
func (b *builder) parseFloat(c *clause, tok string) (float64, *saperrors.Error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, saperrors.New(saperrors.ErrorTypeNumericParse, c.index, c.tag, b.raw,
			"token %q in value of %s is not a valid number", tok, c.tag)
	}
	return v, nil
}
