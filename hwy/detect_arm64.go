//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

var family = []Level{{levelFallback}, {levelNeon}}

// ARM64 (AArch64) always has NEON (ASIMD); it's part of the ARMv8-A base
// architecture. We still check the cpu package for consistency.
func detect() Level {
	return armFeatures{ASIMD: cpu.ARM64.HasASIMD}.level()
}
