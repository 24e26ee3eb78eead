package sand

import (
	"math/bits"

	prng "powder/pkg/core"
)

// scheduler decides the order in which particles are visited during a tick.
// The visited bitset is indexed like the grid but tracks particles: Grid.Swap
// exchanges bits alongside cells so a grain that moved into an unvisited slot
// is not updated a second time.
type scheduler struct {
	order   []int
	visited []uint64
	count   int
}

func newScheduler(total int) *scheduler {
	return &scheduler{
		order:   make([]int, total),
		visited: make([]uint64, (total+63)/64),
	}
}

// run visits every particle exactly once in a fresh random order, calling
// apply with the index the particle occupies at the time it is reached.
func (s *scheduler) run(rng *prng.RNG, apply func(i int)) {
	for i := range s.visited {
		s.visited[i] = 0
	}
	s.count = 0
	rng.Permute(s.order)

	total := len(s.order)
	for s.count < total {
		for _, i := range s.order {
			if s.isVisited(i) {
				continue
			}
			s.mark(i)
			s.count++
			apply(i)
		}
	}
}

func (s *scheduler) isVisited(i int) bool {
	return s.visited[i>>6]&(1<<(uint(i)&63)) != 0
}

func (s *scheduler) mark(i int) {
	s.visited[i>>6] |= 1 << (uint(i) & 63)
}

func (s *scheduler) swap(i, j int) {
	vi, vj := s.isVisited(i), s.isVisited(j)
	if vi == vj {
		return
	}
	s.visited[i>>6] ^= 1 << (uint(i) & 63)
	s.visited[j>>6] ^= 1 << (uint(j) & 63)
}

// visitedCount returns the number of particles marked in the current tick.
func (s *scheduler) visitedCount() int {
	n := 0
	for _, w := range s.visited {
		n += bits.OnesCount64(w)
	}
	return n
}
