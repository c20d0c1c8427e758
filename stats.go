// Package prob2020 computes position-based mutation statistics used to
// detect hotspot signal in cancer genes. The caller aggregates mutations
// into a map of genomic position to count; no I/O is done here.
package prob2020

import (
	"math"

	"github.com/pkg/errors"
)

// Names of the statistics reported by PositionStats.
const (
	Recurrent       = "recurrent"
	EntropyFraction = "entropy_fraction"
	DeltaEntropy    = "delta_entropy"
)

// ErrInvalidInput is the cause of errors from CheckedPositionStats.
// A position only appears in the map because a mutation was observed
// there, so any count below 1 is outside the domain model.
var ErrInvalidInput = errors.New("position count out of domain")

// PositionStats calculates summary statistics for a map of genomic
// position to the number of mutations observed at that position:
//
//	"recurrent": total mutations at positions mutated more than once
//	"entropy_fraction": observed entropy / uniform entropy (1.0 = spread out)
//	"delta_entropy": log(num positions) - observed entropy in nats
//
// With fewer than two positions delta_entropy is 0, and with fewer than
// two total mutations entropy_fraction defaults to 1.0, so degenerate
// maps (including the empty map) never divide by zero.
// All arithmetic is float64. Entries with a count below 1 are invalid
// and will poison the entropies with NaN; use CheckedPositionStats to
// reject them instead.
func PositionStats(pos map[int]int) map[string]float64 {
	var mysum float64
	recurrent := 0
	for _, val := range pos {
		if val > 1 {
			recurrent += val
		}
		mysum += float64(val)
	}

	var ent2, entE float64
	numPos := 0
	for _, val := range pos {
		p := float64(val) / mysum
		ent2 -= p * math.Log2(p)
		entE -= p * math.Log(p)
		numPos++
	}

	deltaEnt := 0.0
	if numPos > 1 {
		deltaEnt = math.Log(float64(numPos)) - entE
	}
	fracUniform := 1.0
	if mysum > 1 {
		fracUniform = ent2 / math.Log2(mysum)
	}

	return map[string]float64{
		Recurrent:       float64(recurrent),
		EntropyFraction: fracUniform,
		DeltaEntropy:    deltaEnt,
	}
}

// CheckedPositionStats is PositionStats with the domain model enforced:
// every count must be at least 1. The returned error wraps
// ErrInvalidInput and names the offending position.
func CheckedPositionStats(pos map[int]int) (map[string]float64, error) {
	for p, val := range pos {
		if val < 1 {
			return nil, errors.Wrapf(ErrInvalidInput, "count %d at position %d", val, p)
		}
	}
	return PositionStats(pos), nil
}
