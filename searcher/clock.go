package searcher

import (
	"math"
	"time"

	"watchyourback/meta"
)

// smoothing is the weight of the newest sample in the moving averages.
const smoothing = 0.3

// Clock turns the time spent on previous moves into a cost budget for the next
// search. The budget shrinks as the game allowance is consumed and whenever
// recent moves ran over their target.
type Clock struct {
	moveTime time.Duration // Target per move
	limit    time.Duration // Whole-game allowance, 0 for none
	used     time.Duration
	average  time.Duration // Moving average of time per move
	rate     float64       // Moving average of cost units searched per second
	moves    int
}

func newClock() *Clock {
	return &Clock{
		moveTime: 250 * time.Millisecond,
		limit:    meta.GAME_TIME_LIMIT,
		rate:     200_000,
	}
}

// Target returns the time the next search should aim to take.
func (c *Clock) Target() time.Duration {
	target := c.moveTime
	if c.limit > 0 {
		left := c.limit - c.used
		if left <= 0 {
			return 0
		}
		target = time.Duration(float64(target) * float64(left) / float64(c.limit))
	}
	if c.average > target && target > 0 {
		target = time.Duration(float64(target) * float64(target) / float64(c.average))
	}
	return target
}

// Budget returns the largest search cost the next move may afford.
func (c *Clock) Budget() float64 {
	return c.Target().Seconds() * c.rate
}

// Record folds one finished search into the averages.
func (c *Clock) Record(elapsed time.Duration, cost float64) {
	c.used += elapsed
	c.moves++
	if c.moves == 1 {
		c.average = elapsed
	} else {
		c.average = time.Duration((1-smoothing)*float64(c.average) + smoothing*float64(elapsed))
	}
	if elapsed > 0 && cost > 0 {
		c.rate = (1-smoothing)*c.rate + smoothing*cost/elapsed.Seconds()
	}
}

// Used returns the total time recorded so far.
func (c *Clock) Used() time.Duration {
	return c.used
}

// searchCost approximates the tree size of a search alternating between own and
// opponent branching factors, starting with own.
func searchCost(own, opp, depth int) float64 {
	own, opp = max(own, 1), max(opp, 1)
	return math.Pow(float64(own), float64((depth+1)/2)) * math.Pow(float64(opp), float64(depth/2))
}
