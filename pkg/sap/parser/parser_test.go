package parser

import (
	"errors"
	"strings"
	"testing"

	saperrors "halcyon-bio/halcyon/pkg/sap/errors"
	"halcyon-bio/halcyon/pkg/sap/policy"
)

func TestParser_Parse_EmptyIsDefaults(t *testing.T) {
	for _, local := range []bool{false, true} {
		for _, noisy := range []bool{false, true} {
			p := NewParser().WithLocalAlignment(local).WithNoisyHomopolymer(noisy)
			got, err := p.Parse("")
			if err != nil {
				t.Fatalf("Parse(\"\") error = %v", err)
			}
			want := policy.Defaults(local, noisy)
			if *got != *want {
				t.Errorf("Parse(\"\") local=%t noisy=%t:\n got %+v\nwant %+v", local, noisy, *got, *want)
			}
		}
	}
}

func TestParser_Parse_Simple(t *testing.T) {
	const pol = "MMP=C44;MA=4;RFG=24,12;FL=8;RDG=2;SNP=10;NP=C4;MIN=7"

	p := NewParser().WithLocalAlignment(true)
	got, err := p.Parse(pol)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got.MismatchPenalty != policy.Constant(44) {
		t.Errorf("MismatchPenalty = %+v, want constant 44", got.MismatchPenalty)
	}
	if got.MatchBonus.Type != policy.CostConstant || got.MatchBonus.Penalty != 4 {
		t.Errorf("MatchBonus = %+v, want constant 4", got.MatchBonus)
	}
	if got.SNPPenalty != 10 {
		t.Errorf("SNPPenalty = %d, want 10", got.SNPPenalty)
	}
	if got.NPenalty != policy.Constant(4) {
		t.Errorf("NPenalty = %+v, want constant 4", got.NPenalty)
	}
	if (got.RefGap != policy.LinearFunc{Const: 24, Linear: 12}) {
		t.Errorf("RefGap = %+v, want {24 12}", got.RefGap)
	}

	// RDG's omitted extension resets to the standard default, not the
	// previously resolved value.
	if (got.ReadGap != policy.LinearFunc{Const: 2, Linear: policy.DefaultReadGapExtend}) {
		t.Errorf("ReadGap = %+v, want {2 %d}", got.ReadGap, policy.DefaultReadGapExtend)
	}

	// MIN and FL keep the local-mode linear coefficients.
	if (got.MinScore != policy.LinearFunc{Const: 7, Linear: policy.DefaultMinLinearLocal}) {
		t.Errorf("MinScore = %+v, want {7 %g}", got.MinScore, policy.DefaultMinLinearLocal)
	}
	if (got.ScoreFloor != policy.LinearFunc{Const: 8, Linear: policy.DefaultFloorLinearLocal}) {
		t.Errorf("ScoreFloor = %+v, want {8 %g}", got.ScoreFloor, policy.DefaultFloorLinearLocal)
	}

	// Untouched fields stay at the local defaults.
	want := policy.Defaults(true, false)
	if got.NCeil != want.NCeil {
		t.Errorf("NCeil = %+v, want %+v", got.NCeil, want.NCeil)
	}
	if got.NCatPair != want.NCatPair {
		t.Errorf("NCatPair = %t, want %t", got.NCatPair, want.NCatPair)
	}
	if got.Seed != want.Seed {
		t.Errorf("Seed = %+v, want %+v", got.Seed, want.Seed)
	}
	if got.SeedInterval != want.SeedInterval {
		t.Errorf("SeedInterval = %+v, want %+v", got.SeedInterval, want.SeedInterval)
	}
	if got.PosMin != want.PosMin || got.PosFrac != want.PosFrac ||
		got.RowMin != want.RowMin || got.RowMult != want.RowMult {
		t.Errorf("position tunables = %g/%g/%g/%g, want %g/%g/%g/%g",
			got.PosMin, got.PosFrac, got.RowMin, got.RowMult,
			want.PosMin, want.PosFrac, want.RowMin, want.RowMult)
	}
}

func TestParser_Parse_CostModels(t *testing.T) {
	tests := []struct {
		name   string
		policy string
		field  func(*policy.Policy) policy.CostModel
		want   policy.CostModelType
	}{
		{"MMP quality", "MMP=Q", func(p *policy.Policy) policy.CostModel { return p.MismatchPenalty }, policy.CostQuality},
		{"MMP rounded quality", "MMP=R", func(p *policy.Policy) policy.CostModel { return p.MismatchPenalty }, policy.CostRoundedQuality},
		{"NP quality", "NP=Q", func(p *policy.Policy) policy.CostModel { return p.NPenalty }, policy.CostQuality},
		{"NP rounded quality", "NP=R", func(p *policy.Policy) policy.CostModel { return p.NPenalty }, policy.CostRoundedQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser().Parse(tt.policy)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.policy, err)
			}
			if tt.field(got).Type != tt.want {
				t.Errorf("cost model type = %v, want %v", tt.field(got).Type, tt.want)
			}
		})
	}
}

func TestParser_Parse_GapOmissionResetsToModeDefault(t *testing.T) {
	// In noisy-homopolymer mode the omitted extension resets to the
	// homopolymer default, not the standard one.
	got, err := NewParser().WithNoisyHomopolymer(true).Parse("RDG=10;RFG=11")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if (got.ReadGap != policy.LinearFunc{Const: 10, Linear: policy.DefaultReadGapExtendHomopolymer}) {
		t.Errorf("ReadGap = %+v, want {10 %d}", got.ReadGap, policy.DefaultReadGapExtendHomopolymer)
	}
	if (got.RefGap != policy.LinearFunc{Const: 11, Linear: policy.DefaultRefGapExtendHomopolymer}) {
		t.Errorf("RefGap = %+v, want {11 %d}", got.RefGap, policy.DefaultRefGapExtendHomopolymer)
	}
}

func TestParser_Parse_NCeilOmissionResetsLinear(t *testing.T) {
	// Set both coefficients, then re-set only the constant: the linear
	// coefficient resets to the global default rather than sticking.
	got, err := NewParser().Parse("NCEIL=1,0.5;NCEIL=2")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if (got.NCeil != policy.LinearFunc{Const: 2, Linear: policy.DefaultNCeilLinear}) {
		t.Errorf("NCeil = %+v, want {2 %g}", got.NCeil, policy.DefaultNCeilLinear)
	}
}

func TestParser_Parse_SeedOmissionResets(t *testing.T) {
	got, err := NewParser().Parse("SEED=1,30,18;SEED=2")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := policy.SeedSpec{
		Mismatches: 2,
		Length:     policy.DefaultSeedLength,
		Period:     policy.DefaultSeedPeriod,
	}
	if got.Seed != want {
		t.Errorf("Seed = %+v, want %+v", got.Seed, want)
	}
}

func TestParser_Parse_SeedFullSpec(t *testing.T) {
	got, err := NewParser().Parse("SEED=1,10,5")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if (got.Seed != policy.SeedSpec{Mismatches: 1, Length: 10, Period: 5}) {
		t.Errorf("Seed = %+v, want {1 10 5}", got.Seed)
	}
}

func TestParser_Parse_IntervalOmissionResets(t *testing.T) {
	got, err := NewParser().Parse("IVAL=L,2.5,3.5;IVAL=C")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := policy.IntervalFunc{Type: policy.IntervalCubeRoot, A: 1.0, B: 0.0}
	if got.SeedInterval != want {
		t.Errorf("SeedInterval = %+v, want %+v", got.SeedInterval, want)
	}
}

func TestParser_Parse_IntervalVariants(t *testing.T) {
	tests := []struct {
		policy string
		want   policy.IntervalFunc
	}{
		{"IVAL=L,0.5,10", policy.IntervalFunc{Type: policy.IntervalLinear, A: 0.5, B: 10}},
		{"IVAL=S,1.15", policy.IntervalFunc{Type: policy.IntervalSquareRoot, A: 1.15, B: 0}},
		{"IVAL=C,2,1", policy.IntervalFunc{Type: policy.IntervalCubeRoot, A: 2, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			got, err := NewParser().Parse(tt.policy)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.policy, err)
			}
			if got.SeedInterval != tt.want {
				t.Errorf("SeedInterval = %+v, want %+v", got.SeedInterval, tt.want)
			}
		})
	}
}

func TestParser_Parse_PosAndRowPreserve(t *testing.T) {
	// POSF and ROWM keep previously resolved values for omitted tokens.
	got, err := NewParser().Parse("POSF=3,0.4;ROWM=5,2;POSF=6;ROWM=7")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.PosMin != 6 || got.PosFrac != 0.4 {
		t.Errorf("PosMin/PosFrac = %g/%g, want 6/0.4", got.PosMin, got.PosFrac)
	}
	// ROWM token order is (mult, min).
	if got.RowMult != 7 || got.RowMin != 2 {
		t.Errorf("RowMult/RowMin = %g/%g, want 7/2", got.RowMult, got.RowMin)
	}
}

func TestParser_Parse_RepeatedTagLastWins(t *testing.T) {
	got, err := NewParser().Parse("MA=3;MA=9")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.MatchBonus.Penalty != 9 {
		t.Errorf("MatchBonus.Penalty = %d, want 9", got.MatchBonus.Penalty)
	}
}

func TestParser_Parse_DistinctTagsCommute(t *testing.T) {
	pairs := [][2]string{
		{"MA=4;SNP=10", "SNP=10;MA=4"},
		{"MMP=C44;NP=Q", "NP=Q;MMP=C44"},
		{"SEED=1,20;IVAL=L,2", "IVAL=L,2;SEED=1,20"},
		{"RDG=2,1;MIN=7,0.3", "MIN=7,0.3;RDG=2,1"},
	}

	for _, pair := range pairs {
		t.Run(pair[0], func(t *testing.T) {
			a, err := NewParser().Parse(pair[0])
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", pair[0], err)
			}
			b, err := NewParser().Parse(pair[1])
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", pair[1], err)
			}
			if *a != *b {
				t.Errorf("clause order changed the result:\n %q -> %+v\n %q -> %+v", pair[0], *a, pair[1], *b)
			}
		})
	}
}

func TestParser_Parse_TrailingSeparator(t *testing.T) {
	got, err := NewParser().Parse("MA=4;")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.MatchBonus.Penalty != 4 {
		t.Errorf("MatchBonus.Penalty = %d, want 4", got.MatchBonus.Penalty)
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		policy     string
		wantType   saperrors.ErrorType
		wantClause int
		wantTag    string
	}{
		{"missing equals", "MA", saperrors.ErrorTypeMalformedClause, 1, ""},
		{"double equals", "MA=2=3", saperrors.ErrorTypeMalformedClause, 1, ""},
		{"empty value", "MA=", saperrors.ErrorTypeMalformedClause, 1, ""},
		{"interior empty clause", "MA=2;;SNP=6", saperrors.ErrorTypeMalformedClause, 2, ""},
		{"unknown tag", "MA=2;BOGUS=1", saperrors.ErrorTypeUnknownTag, 2, "BOGUS"},
		{"too many sub-tokens", "SEED=1,2,3,4", saperrors.ErrorTypeTooManyTokens, 1, "SEED"},
		{"too many for tag", "MIN=1,2,3", saperrors.ErrorTypeTooManyTokens, 1, "MIN"},
		{"wrong count for MA", "MA=2,3", saperrors.ErrorTypeTooManyTokens, 1, "MA"},
		{"empty sub-token", "SEED=1,,3", saperrors.ErrorTypeEmptyToken, 1, "SEED"},
		{"bad cost model prefix", "MMP=X6", saperrors.ErrorTypeCostModelPrefix, 1, "MMP"},
		{"bad N cost model prefix", "NP=Z", saperrors.ErrorTypeCostModelPrefix, 1, "NP"},
		{"bad interval letter", "IVAL=X,1,0", saperrors.ErrorTypeIntervalType, 1, "IVAL"},
		{"non-numeric integer", "MA=abc", saperrors.ErrorTypeNumericParse, 1, "MA"},
		{"non-numeric float", "MIN=1,zz", saperrors.ErrorTypeNumericParse, 1, "MIN"},
		{"float where int required", "RDG=2.5", saperrors.ErrorTypeNumericParse, 1, "RDG"},
		{"bare C constant", "MMP=C", saperrors.ErrorTypeNumericParse, 1, "MMP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser().Parse(tt.policy)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.policy)
			}
			if got != nil {
				t.Errorf("Parse(%q) returned a policy alongside the error", tt.policy)
			}

			var perr *saperrors.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if perr.Type != tt.wantType {
				t.Errorf("error type = %q, want %q", perr.Type, tt.wantType)
			}
			if perr.Clause != tt.wantClause {
				t.Errorf("error clause = %d, want %d", perr.Clause, tt.wantClause)
			}
			if perr.Tag != tt.wantTag {
				t.Errorf("error tag = %q, want %q", perr.Tag, tt.wantTag)
			}
			if perr.Policy != tt.policy {
				t.Errorf("error policy = %q, want %q", perr.Policy, tt.policy)
			}
		})
	}
}

func TestParser_Parse_UnknownTagSuggestion(t *testing.T) {
	_, err := NewParser().Parse("SEEDS=0,22")
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}

	var perr *saperrors.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if !strings.Contains(perr.Suggestion, "SEED") {
		t.Errorf("suggestion = %q, want mention of SEED", perr.Suggestion)
	}
}

func TestTags(t *testing.T) {
	tags := Tags()
	if len(tags) != 13 {
		t.Fatalf("len(Tags()) = %d, want 13", len(tags))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("Tags() not sorted: %q before %q", tags[i-1], tags[i])
		}
	}
}
