package advanced

import "github.com/pkg/errors"

// Threading error returns through the solver's validation loops would add
// noise to code that is otherwise straight arithmetic. Instead, we use
// panics, and the public API recovers to convert to an error.

type SymmetryError error

// Panic with a SymmetryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleSymmetryPanicRecover(r interface{}) error {
	if r != nil {
		if symmetryError, ok := r.(SymmetryError); ok {
			return symmetryError
		}
		panic(r)
	}
	return nil
}
