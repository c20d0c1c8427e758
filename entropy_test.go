package prob2020_test

import (
	"math"

	prob2020 "github.com/inambioinfo/probabilistic2020"
	"github.com/kzahedi/goent/discrete"

	. "gopkg.in/check.v1"
)

type EntropyTest struct{}

var _ = Suite(&EntropyTest{})

func (t *EntropyTest) TestNormEntropy(c *C) {
	e := prob2020.NormEntropy(map[int]int{10: 1, 20: 1, 30: 1, 40: 1})
	c.Assert(close6(e, 1.0), Equals, true)

	e = prob2020.NormEntropy(map[int]int{10: 1000, 20: 1})
	c.Assert(e < 0.01, Equals, true)

	c.Assert(prob2020.NormEntropy(map[int]int{10: 5}), Equals, 0.0)
	c.Assert(prob2020.NormEntropy(map[int]int{}), Equals, 0.0)
}

func (t *EntropyTest) TestAgainstGoent(c *C) {
	// the base-2 entropy inside the fraction should agree with goent on
	// the same distribution.
	res := prob2020.PositionStats(map[int]int{10: 9, 20: 1})
	want := discrete.EntropyBase2([]float64{0.9, 0.1}) / math.Log2(10)
	c.Assert(close6(res[prob2020.EntropyFraction], want), Equals, true)

	res = prob2020.PositionStats(map[int]int{10: 3, 20: 1})
	want = discrete.EntropyBase2([]float64{0.75, 0.25}) / math.Log2(4)
	c.Assert(close6(res[prob2020.EntropyFraction], want), Equals, true)
}

func (t *EntropyTest) TestPeak(c *C) {
	p, n := prob2020.Peak(map[int]int{10: 3, 20: 1, 30: 2})
	c.Assert(p, Equals, 10)
	c.Assert(n, Equals, 3)

	p, n = prob2020.Peak(map[int]int{20: 2, 10: 2})
	c.Assert(p, Equals, 10)
	c.Assert(n, Equals, 2)

	p, n = prob2020.Peak(map[int]int{})
	c.Assert(p, Equals, 0)
	c.Assert(n, Equals, 0)
}
