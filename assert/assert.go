package assert

import "github.com/oomph-ac/locomotion/oerror"

// IsTrue panics with an *oerror.Error built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// NotNil panics if v is nil. name is used in the panic message.
func NotNil(v any, name string) {
	IsTrue(v != nil, "%s must not be nil", name)
}
