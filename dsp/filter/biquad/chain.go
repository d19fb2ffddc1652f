package biquad

// Chain filters complex baseband samples through a cascade of
// real-coefficient sections. The in-phase and quadrature parts each run
// through their own rail of sections built from the same coefficients.
type Chain struct {
	i, q []*Section
}

// NewChain builds a cascade with one section per coefficient set on each
// rail.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{
		i: make([]*Section, len(coeffs)),
		q: make([]*Section, len(coeffs)),
	}
	for k, cf := range coeffs {
		c.i[k] = NewSection(cf)
		c.q[k] = NewSection(cf)
	}

	return c
}

// ProcessSample cascades one complex input sample through all sections.
func (c *Chain) ProcessSample(x complex128) complex128 {
	re, im := real(x), imag(x)
	for k := range c.i {
		re = c.i[k].ProcessSample(re)
		im = c.q[k].ProcessSample(im)
	}

	return complex(re, im)
}

// Reset clears the state of every section on both rails.
func (c *Chain) Reset() {
	for k := range c.i {
		c.i[k].Reset()
		c.q[k].Reset()
	}
}
