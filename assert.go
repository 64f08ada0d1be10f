//go:build !gadebug

package ga

// debug enables precondition checks. Build with -tags gadebug to turn them on.
const debug = false

func assertNearOne(magSq float32, what string) {}
