package match

import "github.com/valyala/fastrand"

// Rand is the randomness source of the engine. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type fastRand struct{}

func (fastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(fastrand.Uint32n(uint32(n)))
}

// DefaultRand is safe for concurrent use.
var DefaultRand Rand = fastRand{}
