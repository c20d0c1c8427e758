package prob2020

import (
	"math"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
)

// Summary holds the spread of one statistic across replicate runs.
// Var is the sample variance and SEM the standard error of the mean;
// both are 0 when fewer than two runs reported the statistic.
type Summary struct {
	Mean float64
	Var  float64
	SEM  float64
}

// Summarize collapses per-replicate statistic maps, such as those from
// repeated simulations feeding PositionStats, into a Summary per
// statistic name.
func Summarize(runs []map[string]float64) map[string]Summary {
	mvs := make(map[string]*meanvar.MeanVar)
	for _, run := range runs {
		for name, v := range run {
			mv, ok := mvs[name]
			if !ok {
				mv = meanvar.New()
				mvs[name] = mv
			}
			mv.Increment(v)
		}
	}

	out := make(map[string]Summary, len(mvs))
	for name, mv := range mvs {
		s := Summary{Mean: mv.Mean.GetResult()}
		if n := mv.Mean.GetN(); n > 1 {
			s.Var = mv.Var.GetResult()
			s.SEM = math.Sqrt(s.Var / float64(n))
		}
		out[name] = s
	}
	return out
}
