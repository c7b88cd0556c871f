package store

import (
	"fmt"
	"testing"

	"github.com/aleksaelezovic/quadstore/pkg/rdf"
)

var dummyWorld = rdf.NewWorld()

// dummyNode returns a distinct, stable *rdf.Node for pattern tests that
// only care about bound-vs-wildcard, never about node content.
func dummyNode(n int) *rdf.Node {
	return dummyWorld.NewURI(fmt.Sprintf("http://example.org/dummy/%d", n))
}

func allIndexed(Ordering) bool { return true }

func none(only ...Ordering) func(Ordering) bool {
	set := make(map[Ordering]bool, len(only))
	for _, o := range only {
		set[o] = true
	}
	return func(o Ordering) bool { return set[o] }
}

func TestBestIndexWildcardIsFullScan(t *testing.T) {
	ord, mode, prefix := bestIndex(allIndexed, Pattern{})
	if ord != SPO || mode != ModeAll || prefix != 0 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexAllBoundIsSingle(t *testing.T) {
	p := Pattern{Subject: dummyNode(1), Predicate: dummyNode(2), Object: dummyNode(3), Graph: dummyNode(4)}
	ord, mode, prefix := bestIndex(allIndexed, p)
	if mode != ModeSingle || prefix != 4 || !ord.IsGraphOrdering() {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexSPOBoundNoGraphStaysRange(t *testing.T) {
	p := Pattern{Subject: dummyNode(1), Predicate: dummyNode(2), Object: dummyNode(3)}
	ord, mode, prefix := bestIndex(allIndexed, p)
	if ord != SPO || mode != ModeRange || prefix != 3 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexSubjectOnlyPrefersSPOThenSOP(t *testing.T) {
	p := Pattern{Subject: dummyNode(1)}

	ord, mode, prefix := bestIndex(allIndexed, p)
	if ord != SPO || mode != ModeRange || prefix != 1 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}

	ord, mode, prefix = bestIndex(none(SOP), p)
	if ord != SOP || mode != ModeRange || prefix != 1 {
		t.Fatalf("with only SOP materialized, got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexSubjectOnlyFallsBackToFilterAll(t *testing.T) {
	p := Pattern{Subject: dummyNode(1)}
	ord, mode, prefix := bestIndex(none(), p)
	if ord != SPO || mode != ModeFilterAll || prefix != 0 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexPredicateObjectDegradesThroughFilterRange(t *testing.T) {
	p := Pattern{Predicate: dummyNode(1), Object: dummyNode(2)}

	ord, mode, prefix := bestIndex(allIndexed, p)
	if mode != ModeRange || prefix != 2 {
		t.Fatalf("expected RANGE with prefix 2, got (%v,%v,%d)", ord, mode, prefix)
	}

	// Neither POS nor OPS materialized: degrade to FILTER_RANGE on PSO/OSP.
	ord, mode, prefix = bestIndex(none(PSO), p)
	if ord != PSO || mode != ModeFilterRange || prefix != 1 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}

	// Nothing at all materialized beyond the guaranteed SPO: final fallback.
	ord, mode, prefix = bestIndex(none(), p)
	if ord != SPO || mode != ModeFilterAll || prefix != 0 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexGraphOnlyRangesOnGraphOrdering(t *testing.T) {
	p := Pattern{Graph: dummyNode(1)}
	ord, mode, prefix := bestIndex(allIndexed, p)
	if ord != GSPO || mode != ModeRange || prefix != 1 {
		t.Fatalf("got (%v,%v,%d)", ord, mode, prefix)
	}
}

func TestBestIndexGraphOnlyWithoutGraphOrderingDowngradesToFilterAll(t *testing.T) {
	p := Pattern{Graph: dummyNode(1)}
	ord, mode, prefix := bestIndex(none(SPO), p)
	if ord != SPO {
		t.Fatalf("expected to fall back to SPO, got %v", ord)
	}
	if mode != ModeFilterAll {
		t.Fatalf("a graph-only pattern with no graph ordering materialized must "+
			"filter every entry, not scan unfiltered; got %v", mode)
	}
	if prefix != 0 {
		t.Fatalf("expected prefix 0 (graph unverified by the plain SPO key), got %d", prefix)
	}
}

func TestBestIndexGraphBoundWithoutGraphIndexDowngradesToFilter(t *testing.T) {
	p := Pattern{Subject: dummyNode(1), Graph: dummyNode(2)}
	ord, mode, prefix := bestIndex(none(SPO, SOP), p)
	if mode != ModeFilterRange {
		t.Fatalf("expected FILTER_RANGE once no graph ordering is materialized, got %v", mode)
	}
	if ord != SPO && ord != SOP {
		t.Fatalf("expected a plain ordering, got %v", ord)
	}
	if prefix != 1 {
		t.Fatalf("expected prefix 1 (S only; G unverified by the key), got %d", prefix)
	}
}
