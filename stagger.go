package aurora

// Stagger spaces the start of sibling animations by declared index:
// Delay(i) = Base + i*Step. With a positive Step delays strictly increase
// with the index, whatever order the siblings were signalled in.
type Stagger struct {
	Base float64
	Step float64
}

// Delay returns the start delay in seconds for the child at index i.
// Negative indices are treated as 0.
func (s Stagger) Delay(i int) float64 {
	if i < 0 {
		i = 0
	}
	return s.Base + float64(i)*s.Step
}

// Schedule returns the delays for n children, indexed by declared position.
func (s Stagger) Schedule(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Delay(i)
	}
	return out
}

// Within returns a stagger for the children of the i-th item: it starts
// where this stagger places item i, offset by inner.Base, and steps by
// inner.Step. Used for lists nested inside staggered cards.
func (s Stagger) Within(i int, inner Stagger) Stagger {
	return Stagger{Base: s.Delay(i) + inner.Base, Step: inner.Step}
}
