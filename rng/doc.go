// Package rng implements the engine's deterministic seeded random stream.
//
// A Stream turns an arbitrary seed string into a reproducible sequence of
// IEEE-754 doubles in [0,1). The same seed byte-for-byte must produce the
// same sequence forever — trial results are compared across engine
// versions and across languages, so the mixing and advance steps are
// fixed algorithms, never "whatever math/rand happens to do this Go
// release".
//
// Construction:
//
//   - The seed string is folded into four uint32 state words using
//     FNV-1a-style avalanching (seedToState).
//   - The state is advanced with sfc32 (a small, fast, chaotic counter
//     construction with a guaranteed period well above 2^64 in practice).
//   - Float64 takes the top 53 bits of two combined draws to fill a
//     double's mantissa uniformly.
//
// Stream is not safe for concurrent use; the engine's trial loop is
// single-threaded by design (see the montecarlo package) and each
// simulation run owns exactly one Stream.
package rng
