// Package biquad runs second-order IIR sections.
//
// A [Section] applies one set of [Coefficients] in Direct Form II
// Transposed to a real stream. A [Chain] cascades sections over complex
// baseband samples, filtering I and Q on separate rails, which is how the
// decimating antialias filter applies one lowpass design to both parts.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
