package internal

import (
	"slices"
	"testing"
)

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing[int](3)
	if r.Len() != 0 || r.Cap() != 3 {
		t.Fatalf("expected empty ring of capacity 3, got len=%d cap=%d", r.Len(), r.Cap())
	}
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}
	if got := r.Slice(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
}

func TestRingPartial(t *testing.T) {
	r := NewRing[string](4)
	r.Push("a")
	r.Push("b")
	if got := r.Slice(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", got)
	}
	if NewRing[int](0).Cap() != 1 {
		t.Fatalf("zero capacity should be raised to one")
	}
}

func TestBufferPoolReturnsEmptyBuffers(t *testing.T) {
	buf := GetBuffer()
	buf.WriteString("state=Idle")
	PutBuffer(buf)
	if GetBuffer().Len() != 0 {
		t.Fatalf("expected a reset buffer")
	}
}
