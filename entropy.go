package prob2020

import "math"

// NormEntropy returns the Shannon entropy of the mutation counts in pos
// scaled by the uniform entropy over the same positions. The value will
// approach 0 as mutations pile onto one position and 1 when every
// position carries an equal count. Maps with fewer than two positions
// have no spread to measure and return 0.
func NormEntropy(pos map[int]int) float64 {
	if len(pos) < 2 {
		return 0
	}
	var n float64
	for _, val := range pos {
		n += float64(val)
	}
	var s float64
	for _, val := range pos {
		p := float64(val) / n
		s += p * math.Log(p)
	}
	return -s / math.Log(float64(len(pos)))
}

// Peak returns the most mutated position and its count. Ties go to the
// lower position so the result is the same across map iteration orders.
// An empty map returns (0, 0).
func Peak(pos map[int]int) (int, int) {
	peak, most := 0, 0
	for p, val := range pos {
		if val > most || (val == most && most > 0 && p < peak) {
			peak, most = p, val
		}
	}
	return peak, most
}
