package booking

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const bookingNumberPrefix = "BK"

// NumberGenerator produces human-presentable booking references. The value
// is prefix + epoch milliseconds + a random suffix in [0,1000): distinct with
// high probability only, so nothing may rely on it as a unique key.
type NumberGenerator interface {
	Next(now time.Time) string
}

type RandomNumberGenerator struct {
	intN func(int) int
}

func NewRandomNumberGenerator() *RandomNumberGenerator {
	return &RandomNumberGenerator{intN: rand.IntN}
}

// NewSeededNumberGenerator pins the suffix source for tests.
func NewSeededNumberGenerator(seed uint64) *RandomNumberGenerator {
	r := rand.New(rand.NewPCG(seed, seed))
	return &RandomNumberGenerator{intN: r.IntN}
}

func (g *RandomNumberGenerator) Next(now time.Time) string {
	return bookingNumberPrefix +
		strconv.FormatInt(now.UnixMilli(), 10) +
		strconv.Itoa(g.intN(1000))
}
