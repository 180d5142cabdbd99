package policy

import "math"

// Default values for every policy field. Mode-dependent fields carry a
// Local or Homopolymer variant; Defaults picks between them.
const (
	DefaultMatchBonus      = 0
	DefaultMatchBonusLocal = 2

	DefaultMismatchPenalty = 6
	DefaultSNPPenalty      = 6
	DefaultNPenalty        = 1

	DefaultReadGapOpen   = 5
	DefaultReadGapExtend = 3
	DefaultRefGapOpen    = 5
	DefaultRefGapExtend  = 3

	// Noisy-homopolymer sequencing technologies call gaps more often, so
	// gaps are priced lower.
	DefaultReadGapOpenHomopolymer   = 3
	DefaultReadGapExtendHomopolymer = 1
	DefaultRefGapOpenHomopolymer    = 3
	DefaultRefGapExtendHomopolymer  = 1

	DefaultMinConst       = -0.6
	DefaultMinLinear      = -0.6
	DefaultMinConstLocal  = 0.0
	DefaultMinLinearLocal = 0.66

	DefaultFloorLinear      = 0.0
	DefaultFloorConstLocal  = 0.0
	DefaultFloorLinearLocal = 0.0

	DefaultNCeilConst  = 0.0
	DefaultNCeilLinear = 0.15
	DefaultNCatPair    = false

	DefaultSeedMismatches = 0
	DefaultSeedLength     = 22
	// DefaultSeedPeriod leaves seed spacing to the interval function.
	DefaultSeedPeriod = -1

	DefaultIntervalA = 1.0
	DefaultIntervalB = 0.0

	DefaultPosMin  = 1.5
	DefaultPosFrac = 0.25
	DefaultRowMin  = 1.0
	DefaultRowMult = 2.0
)

// DefaultFloorConst is the global-mode score floor: low enough that no
// dynamic-programming cell is ever excluded. Local mode floors at zero
// instead.
var DefaultFloorConst = -math.MaxFloat32

// DefaultInterval is the default seed-interval shape.
const DefaultInterval = IntervalSquareRoot

// Defaults builds the fully-populated baseline policy for the given mode
// flags. It is a pure function: every call with the same flags yields an
// identical value, and every field is defined before any clause is applied.
//
// Local mode selects the local match bonus and the local minimum-score and
// score-floor functions. Noisy-homopolymer mode selects relaxed gap
// penalties. The two flags are independent; no other field depends on
// either.
func Defaults(local, noisyHomopolymer bool) *Policy {
	p := &Policy{
		MatchBonus:      Constant(DefaultMatchBonus),
		MismatchPenalty: Constant(DefaultMismatchPenalty),
		NPenalty:        Constant(DefaultNPenalty),
		SNPPenalty:      DefaultSNPPenalty,
		ReadGap:         LinearFunc{Const: DefaultReadGapOpen, Linear: DefaultReadGapExtend},
		RefGap:          LinearFunc{Const: DefaultRefGapOpen, Linear: DefaultRefGapExtend},
		MinScore:        LinearFunc{Const: DefaultMinConst, Linear: DefaultMinLinear},
		ScoreFloor:      LinearFunc{Const: DefaultFloorConst, Linear: DefaultFloorLinear},
		NCeil:           LinearFunc{Const: DefaultNCeilConst, Linear: DefaultNCeilLinear},
		NCatPair:        DefaultNCatPair,
		Seed: SeedSpec{
			Mismatches: DefaultSeedMismatches,
			Length:     DefaultSeedLength,
			Period:     DefaultSeedPeriod,
		},
		SeedInterval: IntervalFunc{Type: DefaultInterval, A: DefaultIntervalA, B: DefaultIntervalB},
		PosMin:       DefaultPosMin,
		PosFrac:      DefaultPosFrac,
		RowMin:       DefaultRowMin,
		RowMult:      DefaultRowMult,
	}

	if local {
		p.MatchBonus = Constant(DefaultMatchBonusLocal)
		p.MinScore = LinearFunc{Const: DefaultMinConstLocal, Linear: DefaultMinLinearLocal}
		p.ScoreFloor = LinearFunc{Const: DefaultFloorConstLocal, Linear: DefaultFloorLinearLocal}
	}

	if noisyHomopolymer {
		p.ReadGap = LinearFunc{Const: DefaultReadGapOpenHomopolymer, Linear: DefaultReadGapExtendHomopolymer}
		p.RefGap = LinearFunc{Const: DefaultRefGapOpenHomopolymer, Linear: DefaultRefGapExtendHomopolymer}
	}

	return p
}
