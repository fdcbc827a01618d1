// Package ratio holds the percentage rounding shared by every progress
// figure shown to learners.
package ratio

import "math/bits"

// Percent returns round(100 × part / whole) using round-half-away-from-zero,
// so 1/3 → 33, 2/3 → 67 and 1/8 → 13. The result is clamped to [0, 100];
// a non-positive whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	// (200·part + whole) / (2·whole) in 128-bit to stay exact for any int.
	hi, lo := bits.Mul64(uint64(part), 200)
	lo, carry := bits.Add64(lo, uint64(whole), 0)
	hi += carry
	q, _ := bits.Div64(hi, lo, 2*uint64(whole))
	return int(q)
}
