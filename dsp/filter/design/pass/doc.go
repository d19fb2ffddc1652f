// Package pass designs lowpass filters as cascades of biquad sections.
//
// Designs return []biquad.Coefficients ready for [biquad.NewChain]. Odd
// orders end with a first-order section (B2 = A2 = 0).
package pass
