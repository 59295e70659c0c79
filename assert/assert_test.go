package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/locomotion/oerror"
)

func TestIsTruePanicsWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var oErr *oerror.Error
		if !errors.As(err, &oErr) || oErr.Err != "body must not be nil" {
			t.Fatalf("unexpected panic value %v", err)
		}
	}()
	NotNil(nil, "body")
}

func TestIsTrueNoPanic(t *testing.T) {
	IsTrue(true, "never")
}
