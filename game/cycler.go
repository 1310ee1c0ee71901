package game

const (
	left  = -1
	right = 1
)

// Cycler walks player indices in the current direction. Reversal is a
// sign flip; all advancement is modular so it never leaves [0, count).
type Cycler struct {
	count     int
	current   int
	direction int
}

func NewCycler(count int) *Cycler {
	return &Cycler{
		count:     count,
		direction: right,
	}
}

func (c *Cycler) Count() int {
	return c.count
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.count) % c.count
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
