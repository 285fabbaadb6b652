package fourier

// Frequency returns the frequency of the coefficient at sequence index i.
// Sequence indices 0, 1, 2, 3, 4, … carry frequencies 0, +1, -1, +2, -2, ….
// Frequency panics for negative i.
func Frequency(i int) int {
	if i < 0 {
		panic("fourier: negative coefficient index")
	}
	n := (i + 1) / 2
	if i%2 == 0 {
		return -n
	}
	return n
}

// Index returns the sequence index of the coefficient for frequency f.
// It is the inverse of Frequency.
func Index(f int) int {
	switch {
	case f > 0:
		return 2*f - 1
	case f < 0:
		return -2 * f
	}
	return 0
}

// Count returns the number of coefficients produced for numComponents
// rotating components: the constant term plus numComponents/2 pairs.
func Count(numComponents int) int {
	return numComponents + 1
}

// Pairs returns the number of (+n,-n) pairs in a coefficient sequence of
// length l, not counting an incomplete trailing pair.
func Pairs(l int) int {
	if l <= 1 {
		return 0
	}
	return (l - 1) / 2
}
