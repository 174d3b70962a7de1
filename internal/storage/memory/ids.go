package memory

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/aanand-mishra/school-api/internal/config"
)

// idSource hands out positive ids that taken reports as unused.
type idSource interface {
	next(taken func(int) bool) int
}

func newIDSource(strategy string) (idSource, error) {
	switch strategy {
	case config.IDStrategyRandom, "":
		return &randomIDs{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}, nil
	case config.IDStrategySequential:
		return &sequentialIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// randomIDs draws uniformly from [1, MaxInt32) until it finds a free id.
// The retry loop is unbounded; with rosters far smaller than the id
// space it ends after one draw in practice.
type randomIDs struct {
	r *rand.Rand
}

func (g *randomIDs) next(taken func(int) bool) int {
	for {
		id := g.r.IntN(math.MaxInt32-1) + 1
		if !taken(id) {
			return id
		}
	}
}

// sequentialIDs counts up from 1, skipping ids already in use.
type sequentialIDs struct {
	last int
}

func (g *sequentialIDs) next(taken func(int) bool) int {
	for {
		g.last++
		if !taken(g.last) {
			return g.last
		}
	}
}
