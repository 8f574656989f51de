// Package dbg turns the sweep's arena handles into readable labels for
// development builds, the same way the teacher turns pointer identities
// into readable labels: lazily, non-deterministically, leaking memory on
// purpose because this only ever runs in short-lived debug tooling.
package dbg

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo = map[string]string{}

func init() {
	// Names are assigned in order of demand, not of creation, so make them
	// nondeterministic to remind the user that a name doesn't mean the same
	// handle between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable label for a (kind, handle) pair, e.g.
// Name("edge", 7). The same pair always gets the same label within a
// process; handle 0 always gets a fixed sentinel label rather than a
// random one, since for NodeHandle/ListHandle it names the live nil node.
func Name(kind string, handle uint32) string {
	if handle == 0 {
		return "∅"
	}
	key := fmt.Sprintf("%s:%d", kind, handle)
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// Colored wraps a kind label in a kind-specific terminal color, so a dump
// of intermixed edge/point/node names stays visually separable.
func Colored(kind string, handle uint32) string {
	name := Name(kind, handle)
	switch kind {
	case "edge":
		return aurora.Cyan(name).String()
	case "point":
		return aurora.Green(name).String()
	case "slice":
		return aurora.Yellow(name).String()
	case "node":
		return aurora.Magenta(name).String()
	default:
		return name
	}
}
