//go:build wasm && simd128

package hwy

var family = []Level{{levelFallback}, {levelWasm128}}

// WebAssembly has no feature detection; a module built with simd128 only
// loads on engines that support it.
func detect() Level {
	return Level{levelWasm128}
}

// NewWasm128 returns the Wasm128 token. It only exists in builds with the
// simd128 tag, so code reaching for it in other builds does not compile.
func NewWasm128() Wasm128 {
	return Wasm128{}
}
