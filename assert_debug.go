//go:build gadebug

package ga

import (
	"fmt"

	"github.com/chewxy/math32"
)

const debug = true

// assertNearOne panics if a value that is documented to be normalized is
// clearly not.
func assertNearOne(magSq float32, what string) {
	if !(math32.Abs(magSq-1) <= 1e-2) {
		panic(fmt.Sprintf("ga: %s has squared magnitude %g, expected 1", what, magSq))
	}
}
