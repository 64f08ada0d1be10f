package ga

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// ErrNoFMA is returned by [CheckCPU] on processors without fused multiply-add.
var ErrNoFMA = errors.New("ga: CPU lacks fused multiply-add")

// HasFMA reports whether the processor executes fused multiply-add in
// hardware. It says nothing about whether the binary uses it; on amd64, for
// example, the compiler only emits FMA instructions for GOAMD64=v3 and up.
func HasFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasFMA
	case "arm64":
		// FMA is part of the base floating point instruction set.
		return cpu.ARM64.HasFP && cpu.ARM64.HasASIMD
	case "ppc64", "ppc64le", "s390x", "riscv64", "loong64":
		return true
	}
	return false
}

// CheckCPU returns an error wrapping [ErrNoFMA] if the processor lacks
// fused multiply-add. Applications that rely on the throughput of this
// package can call it once at startup.
func CheckCPU() error {
	if !HasFMA() {
		return fmt.Errorf("%w (GOARCH=%s)", ErrNoFMA, runtime.GOARCH)
	}
	return nil
}
