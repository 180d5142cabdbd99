// Package policy defines the resolved seed-alignment policy value and the
// mode-dependent default tables it starts from.
//
// A Policy bundles everything an alignment engine needs from the scoring
// side: the match bonus, the mismatch/N cost models, gap penalty functions,
// minimum-score and score-floor functions, the N ceiling, seed geometry,
// and position-search tunables.
//
// Defaults is the only constructor. It is a pure function of the two mode
// flags (local alignment, noisy homopolymer) and fully populates every
// field; the parser in halcyon-bio/halcyon/pkg/sap/parser then overwrites
// fields clause by clause.
package policy
