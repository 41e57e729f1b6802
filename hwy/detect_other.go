//go:build !amd64 && !arm64 && !(wasm && simd128)

package hwy

var family = []Level{{levelFallback}}

// Other architectures, and wasm builds without the simd128 tag, only have
// the scalar level.
func detect() Level {
	return Level{}
}
