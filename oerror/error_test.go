package oerror

import "testing"

func TestNewFormats(t *testing.T) {
	if got := New("bad value %d", 3).Error(); got != "bad value 3" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := New("100% literal").Error(); got != "100% literal" {
		t.Fatalf("format verbs should be left alone without args, got %q", got)
	}
}
