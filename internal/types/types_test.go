package types

import "testing"

func TestPeelAndWrapSnapshotsRoundTrip(t *testing.T) {
	inner := &Primitive{Kind: Int}
	wrapped := WrapSnapshots(inner, 3)

	n, peeled := PeelSnapshots(wrapped)
	if n != 3 {
		t.Fatalf("expected 3 snapshot layers, got %d", n)
	}
	if peeled != inner {
		t.Fatalf("expected peeled type to be the original inner type, got %v", peeled)
	}
}

func TestPeelSnapshotsZeroLayers(t *testing.T) {
	inner := &Primitive{Kind: Bool}
	n, peeled := PeelSnapshots(inner)
	if n != 0 {
		t.Fatalf("expected 0 layers for an unwrapped type, got %d", n)
	}
	if peeled != inner {
		t.Fatalf("expected peeled type to equal input, got %v", peeled)
	}
}

func TestEnumVariantIndex(t *testing.T) {
	e := &Enum{
		Name: "E",
		Variants: []Variant{
			{Name: "A"},
			{Name: "B", Payload: TypeInt},
			{Name: "C"},
		},
	}

	if idx := e.VariantIndex("B"); idx != 1 {
		t.Fatalf("expected variant B at index 1, got %d", idx)
	}
	if idx := e.VariantIndex("Z"); idx != -1 {
		t.Fatalf("expected missing variant to return -1, got %d", idx)
	}
}
