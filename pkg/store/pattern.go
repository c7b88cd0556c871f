package store

// SearchMode names how an Iterator walks the index it was given.
type SearchMode uint8

const (
	// ModeAll visits every entry in the index with no filtering.
	ModeAll SearchMode = iota
	// ModeSingle visits at most one entry: every component is bound and
	// the store is a set, so a match (if any) is unique.
	ModeSingle
	// ModeRange visits a contiguous run whose leading storage slots
	// equal the pattern's bound components; no further filtering is
	// needed because the index's own sort order guarantees the run's
	// boundaries.
	ModeRange
	// ModeFilterRange narrows to a contiguous run on a shorter bound
	// prefix than the pattern actually specifies, then re-checks the
	// full pattern against every entry in that run.
	ModeFilterRange
	// ModeFilterAll scans the entire index, re-checking the full
	// pattern against every entry. The fallback of last resort.
	ModeFilterAll
)

func (m SearchMode) String() string {
	switch m {
	case ModeAll:
		return "ALL"
	case ModeSingle:
		return "SINGLE"
	case ModeRange:
		return "RANGE"
	case ModeFilterRange:
		return "FILTER_RANGE"
	case ModeFilterAll:
		return "FILTER_ALL"
	default:
		return "UNKNOWN"
	}
}

// candidate names one ordering that could serve a pattern signature and
// how many of its leading storage slots the pattern's bound components
// occupy.
type candidate struct {
	order  Ordering
	prefix int
}

// selection is the decision-table entry for one 3-bit (S,P,O bound?)
// signature: a first-choice pair of orderings to range-scan, and,
// for signatures with two bound components, a second-choice pair to
// fall back to under a filtering scan when neither first-choice
// ordering is materialized.
type selection struct {
	mode      SearchMode
	stage1    [2]candidate
	hasStage2 bool
	stage2Mode SearchMode
	stage2    [2]candidate
}

// bestIndexTable is indexed by a 3-bit signature: bit 2 is "S bound",
// bit 1 is "P bound", bit 0 is "O bound". It is grounded directly on the
// reference implementation's sord_best_index: the same signature bits,
// the same two-candidates-then-fallback shape, and the same
// RANGE -> FILTER_RANGE -> FILTER_ALL degradation order.
var bestIndexTable = [8]selection{
	0b000: {mode: ModeAll, stage1: [2]candidate{{SPO, 0}, {SPO, 0}}},
	0b001: {mode: ModeRange, stage1: [2]candidate{{OSP, 1}, {OPS, 1}}},
	0b010: {mode: ModeRange, stage1: [2]candidate{{PSO, 1}, {POS, 1}}},
	0b011: {
		mode:   ModeRange,
		stage1: [2]candidate{{POS, 2}, {OPS, 2}},
		hasStage2: true, stage2Mode: ModeFilterRange,
		stage2: [2]candidate{{PSO, 1}, {OSP, 1}},
	},
	0b100: {mode: ModeRange, stage1: [2]candidate{{SPO, 1}, {SOP, 1}}},
	0b101: {
		mode:   ModeRange,
		stage1: [2]candidate{{SOP, 2}, {OSP, 2}},
		hasStage2: true, stage2Mode: ModeFilterRange,
		stage2: [2]candidate{{SPO, 1}, {OPS, 1}},
	},
	0b110: {
		mode:   ModeRange,
		stage1: [2]candidate{{SPO, 2}, {PSO, 2}},
		hasStage2: true, stage2Mode: ModeFilterRange,
		stage2: [2]candidate{{SOP, 1}, {POS, 1}},
	},
	0b111: {mode: ModeRange, stage1: [2]candidate{{SPO, 3}, {SPO, 3}}},
}

// signature computes the 3-bit (S?,P?,O?) signature of a pattern.
func signature(p Pattern) int {
	sig := 0
	if p.Subject != nil {
		sig |= 0b100
	}
	if p.Predicate != nil {
		sig |= 0b010
	}
	if p.Object != nil {
		sig |= 0b001
	}
	return sig
}

// bestIndex chooses the ordering, search mode, and bound-prefix length
// to answer p, given which of the twelve orderings hasIndex reports as
// materialized.
//
// Graph handling: when p.Graph is bound, each candidate's graph-prefixed
// counterpart is tried first (one extra leading bound slot, same mode,
// except ModeAll upgrades to ModeRange since a bound graph is itself a
// real prefix to scan). If no graph-prefixed counterpart is available,
// the plain candidate is used instead; since the plain ordering's key
// alone doesn't disambiguate by graph, ModeAll/ModeRange/ModeSingle all
// downgrade to a filtering mode (ModeFilterAll/ModeFilterRange/
// ModeFilterAll respectively) so the pattern's graph component still
// gets checked on every visited entry. ModeFilterRange/ModeFilterAll
// already re-check the whole pattern, so they need no such downgrade.
func bestIndex(hasIndex func(Ordering) bool, p Pattern) (Ordering, SearchMode, int) {
	sig := signature(p)
	sel := bestIndexTable[sig]

	if ord, mode, prefix, ok := pickCandidate(hasIndex, sel.stage1, sel.mode, p.Graph != nil); ok {
		return ord, upgradeToSingle(mode, prefix), prefix
	}
	if sel.hasStage2 {
		if ord, mode, prefix, ok := pickCandidate(hasIndex, sel.stage2, sel.stage2Mode, p.Graph != nil); ok {
			return ord, upgradeToSingle(mode, prefix), prefix
		}
	}

	// Final fallback: SPO is the one ordering every Model always
	// materializes, and ModeFilterAll re-checks every component of p
	// (including a bound graph) against every entry.
	return SPO, ModeFilterAll, 0
}

// upgradeToSingle promotes a full-tuple match (all four slots bound) to
// ModeSingle: the store is a set, so at most one quad can match, and
// there is no need to keep scanning for a range boundary after it.
func upgradeToSingle(mode SearchMode, prefix int) SearchMode {
	if prefix == 4 && (mode == ModeRange || mode == ModeAll) {
		return ModeSingle
	}
	return mode
}

func pickCandidate(hasIndex func(Ordering) bool, cands [2]candidate, mode SearchMode, graphBound bool) (Ordering, SearchMode, int, bool) {
	if graphBound {
		for _, c := range cands {
			g := c.order.graphVariant()
			if hasIndex(g) {
				effective := mode
				if effective == ModeAll {
					effective = ModeRange
				}
				return g, effective, c.prefix + 1, true
			}
		}
	}
	for _, c := range cands {
		if !hasIndex(c.order) {
			continue
		}
		effective := mode
		if graphBound {
			switch mode {
			case ModeAll:
				effective = ModeFilterAll
			case ModeRange:
				effective = ModeFilterRange
			case ModeSingle:
				effective = ModeFilterAll
			}
		}
		return c.order, effective, c.prefix, true
	}
	return 0, mode, 0, false
}
