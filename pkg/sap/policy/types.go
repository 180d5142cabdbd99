package policy

import (
	"fmt"
	"math"
)

// CostModelType selects how a per-position penalty is computed.
type CostModelType int

const (
	// CostConstant charges a fixed penalty regardless of base quality.
	CostConstant CostModelType = iota + 1
	// CostQuality charges the base's quality value.
	CostQuality
	// CostRoundedQuality charges the base's quality value rounded to the
	// nearest 10 and capped at 30.
	CostRoundedQuality
)

// String returns a human-readable name for the cost model type.
func (t CostModelType) String() string {
	switch t {
	case CostConstant:
		return "constant"
	case CostQuality:
		return "quality"
	case CostRoundedQuality:
		return "rounded-quality"
	default:
		return "unknown"
	}
}

// CostModel describes the penalty charged at an alignment position, either
// as a fixed constant or as a function of the base's quality value.
// Penalty is meaningful only when Type is CostConstant.
type CostModel struct {
	Type    CostModelType `json:"type" yaml:"type"`
	Penalty int           `json:"penalty" yaml:"penalty"`
}

// Constant builds a fixed-penalty cost model.
func Constant(penalty int) CostModel {
	return CostModel{Type: CostConstant, Penalty: penalty}
}

// String renders the cost model, including the penalty for constant models.
func (c CostModel) String() string {
	if c.Type == CostConstant {
		return fmt.Sprintf("constant %d", c.Penalty)
	}
	return c.Type.String()
}

// PenaltyFor computes the penalty for a position given the base's quality
// value.
func (c CostModel) PenaltyFor(quality int) int {
	switch c.Type {
	case CostQuality:
		return quality
	case CostRoundedQuality:
		rounded := (quality + 5) / 10 * 10
		if rounded > 30 {
			rounded = 30
		}
		return rounded
	default:
		return c.Penalty
	}
}

// LinearFunc is a linear function of one variable: Const + Linear*x.
// Depending on the field it parameterizes, x is the read length (minimum
// score, score floor, N ceiling) or the gap length (gap penalties, where
// Const is the open penalty and Linear the per-position extension penalty).
type LinearFunc struct {
	Const  float64 `json:"const" yaml:"const"`
	Linear float64 `json:"linear" yaml:"linear"`
}

// Eval evaluates the function at x.
func (f LinearFunc) Eval(x float64) float64 {
	return f.Const + f.Linear*x
}

// String renders the function as "const + linear*x".
func (f LinearFunc) String() string {
	return fmt.Sprintf("%g + %g*x", f.Const, f.Linear)
}

// IntervalType selects the shape of the seed-interval function.
type IntervalType int

const (
	// IntervalLinear spaces seeds as a linear function of read length.
	IntervalLinear IntervalType = iota + 1
	// IntervalSquareRoot spaces seeds as a function of sqrt(read length).
	IntervalSquareRoot
	// IntervalCubeRoot spaces seeds as a function of cbrt(read length).
	IntervalCubeRoot
)

// String returns a human-readable name for the interval type.
func (t IntervalType) String() string {
	switch t {
	case IntervalLinear:
		return "linear"
	case IntervalSquareRoot:
		return "square-root"
	case IntervalCubeRoot:
		return "cube-root"
	default:
		return "unknown"
	}
}

// IntervalFunc computes the interval between consecutive seed positions as
// A*f(readLen) + B, where f depends on Type. Intervals below 1 are rounded
// up to 1.
type IntervalFunc struct {
	Type IntervalType `json:"type" yaml:"type"`
	A    float64      `json:"a" yaml:"a"`
	B    float64      `json:"b" yaml:"b"`
}

// Interval computes the seed interval for a read of the given length.
func (f IntervalFunc) Interval(readLen int) int {
	x := float64(readLen)
	switch f.Type {
	case IntervalSquareRoot:
		x = math.Sqrt(x)
	case IntervalCubeRoot:
		x = math.Cbrt(x)
	}
	ival := f.A*x + f.B
	if ival < 1 {
		return 1
	}
	return int(ival + 0.5)
}

// SeedSpec describes seed geometry: how many mismatches a seed may contain,
// how long seeds are, and how far apart consecutive seeds start. A Period
// of -1 means the interval function determines the spacing.
type SeedSpec struct {
	Mismatches int `json:"mismatches" yaml:"mismatches"`
	Length     int `json:"length" yaml:"length"`
	Period     int `json:"period" yaml:"period"`
}

// Policy is a fully-resolved scoring and seed-extraction configuration.
// It is produced by Defaults and then overwritten clause by clause during
// parsing; once returned to a caller it is never mutated.
type Policy struct {
	// MatchBonus is awarded at each position where read and reference
	// characters agree. Zero by default in global alignment mode.
	MatchBonus CostModel `json:"match_bonus" yaml:"match_bonus"`

	// MismatchPenalty is charged at each mismatched position.
	MismatchPenalty CostModel `json:"mismatch_penalty" yaml:"mismatch_penalty"`

	// NPenalty is charged at each position with an N in the read or the
	// reference.
	NPenalty CostModel `json:"n_penalty" yaml:"n_penalty"`

	// SNPPenalty is charged per nucleotide difference in a decoded
	// colorspace alignment.
	SNPPenalty int `json:"snp_penalty" yaml:"snp_penalty"`

	// ReadGap and RefGap price gaps as open + extend*gapLen.
	ReadGap LinearFunc `json:"read_gap" yaml:"read_gap"`
	RefGap  LinearFunc `json:"ref_gap" yaml:"ref_gap"`

	// MinScore is the lowest total score, as a function of read length,
	// at which an alignment is still reported.
	MinScore LinearFunc `json:"min_score" yaml:"min_score"`

	// ScoreFloor is the lowest score, as a function of read length, a
	// dynamic-programming cell may hold and still lie on a valid
	// alignment path.
	ScoreFloor LinearFunc `json:"score_floor" yaml:"score_floor"`

	// NCeil caps the number of N positions allowed, as a function of
	// read length.
	NCeil LinearFunc `json:"n_ceil" yaml:"n_ceil"`

	// NCatPair concatenates mates before applying the N ceiling.
	NCatPair bool `json:"n_cat_pair" yaml:"n_cat_pair"`

	// Seed describes seed geometry; SeedInterval spaces the seeds when
	// Seed.Period is unset.
	Seed         SeedSpec     `json:"seed" yaml:"seed"`
	SeedInterval IntervalFunc `json:"seed_interval" yaml:"seed_interval"`

	// Position-search tunables: of the seed positions that fit on a
	// read, examine at least PosMin plus PosFrac times the total; from
	// each position attempt at most RowMin plus RowMult times the
	// candidate rows.
	PosMin  float64 `json:"posmin" yaml:"posmin"`
	PosFrac float64 `json:"posfrac" yaml:"posfrac"`
	RowMin  float64 `json:"rowmin" yaml:"rowmin"`
	RowMult float64 `json:"rowmult" yaml:"rowmult"`
}
