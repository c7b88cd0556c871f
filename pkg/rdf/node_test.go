package rdf

import "testing"

func TestNewURIInterning(t *testing.T) {
	w := NewWorld()
	a := w.NewURI("http://example.org/alice")
	b := w.NewURI("http://example.org/alice")
	if a != b {
		t.Fatalf("expected the same node for repeated NewURI, got distinct pointers")
	}
	if !w.NodeEquals(a, b) {
		t.Fatalf("NodeEquals disagreed with pointer identity")
	}
}

func TestNewURIDistinctForDifferentIRIs(t *testing.T) {
	w := NewWorld()
	a := w.NewURI("http://example.org/alice")
	b := w.NewURI("http://example.org/bob")
	if a == b {
		t.Fatalf("distinct IRIs must intern to distinct nodes")
	}
	if Less(a, b) == Less(b, a) {
		t.Fatalf("Less must be a strict total order")
	}
}

func TestNewBlankInterning(t *testing.T) {
	w := NewWorld()
	a := w.NewBlank("b0")
	b := w.NewBlank("b0")
	c := w.NewBlank("b1")
	if a != b {
		t.Fatalf("expected the same node for repeated NewBlank with same label")
	}
	if a == c {
		t.Fatalf("distinct blank labels must intern distinct nodes")
	}
}

func TestLiteralDatatypeDistinctFromLangOrPlain(t *testing.T) {
	w := NewWorld()
	integer := w.NewURI("http://www.w3.org/2001/XMLSchema#integer")
	plain := w.NewLiteral("42", nil, "")
	typed := w.NewLiteral("42", integer, "")
	tagged := w.NewLiteral("42", nil, "en")

	if plain == typed || plain == tagged || typed == tagged {
		t.Fatalf("literals differing only in datatype/language must not collide")
	}
	if w.NewLiteral("42", integer, "") != typed {
		t.Fatalf("re-interning the same typed literal must return the same node")
	}
}

func TestLiteralLanguageWinsOverDatatype(t *testing.T) {
	w := NewWorld()
	str := w.NewURI("http://www.w3.org/2001/XMLSchema#string")
	a := w.NewLiteral("hi", str, "en")
	b := w.NewLiteral("hi", nil, "en")
	if a != b {
		t.Fatalf("when both are given, language must win and datatype must be dropped")
	}
	if a.Datatype() != nil {
		t.Fatalf("a language-tagged literal must report no datatype")
	}
	if a.Language() != "en" {
		t.Fatalf("expected language tag 'en', got %q", a.Language())
	}
}

func TestNullNodeSortsBelowEveryRealNode(t *testing.T) {
	w := NewWorld()
	n := w.NewURI("http://example.org/x")
	if !Less(nil, n) {
		t.Fatalf("nil must sort below a real node")
	}
	if Less(n, nil) {
		t.Fatalf("a real node must never sort below nil")
	}
	if Less(nil, nil) {
		t.Fatalf("nil must not sort below itself")
	}
}

func TestNodeCopyAndFreeAreNoOps(t *testing.T) {
	w := NewWorld()
	n := w.NewURI("http://example.org/x")
	if w.NodeCopy(n) != n {
		t.Fatalf("NodeCopy must return the same canonical reference")
	}
	w.NodeFree(n)
	if w.NewURI("http://example.org/x") != n {
		t.Fatalf("NodeFree must not drop a node still referenced elsewhere")
	}
}

func TestRetainReleaseDropsNodeAtZero(t *testing.T) {
	w := NewWorld()
	n := w.NewURI("http://example.org/x")
	w.Retain(n)
	w.Retain(n)
	w.Release(n)
	if w.RefCount(n) != 1 {
		t.Fatalf("expected refcount 1, got %d", w.RefCount(n))
	}
	w.Release(n)
	if w.RefCount(n) != 0 {
		t.Fatalf("expected refcount 0 after final release")
	}
	again := w.NewURI("http://example.org/x")
	if again == n {
		t.Fatalf("a fully-released node must be dropped from the interner")
	}
}
