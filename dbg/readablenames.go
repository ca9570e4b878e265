package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, which helps
// when staring at solver traces full of point and line addresses. It
// flagrantly leaks memory, but names are generated lazily, so that only
// matters if you're actually debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic as a reminder that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
