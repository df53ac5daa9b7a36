// Package jigsaw generates random irregular block layouts for n×n grids
// with n = b*b.
package jigsaw

import (
	"errors"
	"fmt"
	"math/rand"
)

const maxRetries = 200

var (
	ErrBlockSize = errors.New("jigsaw: block size must be at least 2")
	ErrExhausted = errors.New("jigsaw: retry budget exhausted")
)

// Layout assigns every cell of an n×n grid to one of n blocks.
type Layout struct {
	Size    int   // n
	Regions []int // Region of each relative cell, row-major
}

// Blocks returns the cells of every region in ascending cell order.
func (l Layout) Blocks() [][]int {
	blocks := make([][]int, l.Size)
	for cell, r := range l.Regions {
		blocks[r] = append(blocks[r], cell)
	}
	return blocks
}

// Generate builds a random layout for a (b*b)×(b*b) grid. Every region has
// exactly b*b orthogonally contiguous cells. The same seed yields the same
// layout.
func Generate(blockSize int, seed int64) (Layout, error) {
	if blockSize < 2 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrBlockSize, blockSize)
	}
	g := grid{b: blockSize, n: blockSize * blockSize}
	rng := rand.New(rand.NewSource(seed))
	for range maxRetries {
		if regions, ok := g.try(rng); ok {
			return Layout{Size: g.n, Regions: regions}, nil
		}
	}
	return Layout{}, ErrExhausted
}

type grid struct {
	b, n int
}

func (g grid) cells() int {
	return g.n * g.n
}

// try runs one attempt: a multi-source BFS from one random seed per macro
// box, then cell shifts along region chains until the sizes even out.
func (g grid) try(rng *rand.Rand) ([]int, bool) {
	assigned := make([]int, g.cells())
	for i := range assigned {
		assigned[i] = -1
	}

	type entry struct{ pos, region int }
	queue := make([]entry, 0, g.cells())
	for r, pos := range g.seeds(rng) {
		assigned[pos] = r
		queue = append(queue, entry{pos, r})
	}

	head := 0
	for head < len(queue) {
		levelEnd := len(queue)
		rng.Shuffle(levelEnd-head, func(i, j int) {
			queue[head+i], queue[head+j] = queue[head+j], queue[head+i]
		})
		for head < levelEnd {
			e := queue[head]
			head++
			for _, nb := range g.neighbors(e.pos) {
				if assigned[nb] == -1 {
					assigned[nb] = e.region
					queue = append(queue, entry{nb, e.region})
				}
			}
		}
	}

	sizes := make([]int, g.n)
	for _, r := range assigned {
		sizes[r]++
	}
	return assigned, g.balance(assigned, sizes, rng)
}

// balance moves cells until every region holds n cells. Each step finds a
// chain of regions from an oversized region to an undersized one and shifts
// one cell along every link, so a cell can pass through regions that are
// already full.
func (g grid) balance(assigned, sizes []int, rng *rand.Rand) bool {
	for range g.cells() * 10 {
		done := true
		for _, s := range sizes {
			if s != g.n {
				done = false
				break
			}
		}
		if done {
			return true
		}

		path := g.chain(assigned, sizes, rng)
		if path == nil {
			return false
		}
		// Walk backwards so each giving region is still untouched.
		for i := len(path) - 2; i >= 0; i-- {
			if !g.shift(assigned, sizes, path[i], path[i+1], rng) {
				break
			}
		}
	}
	return false
}

// chain returns a shortest region path from an oversized region to an
// undersized one, where each link can hand over a cell without splitting
// the giving region. It returns nil when no such path exists.
func (g grid) chain(assigned, sizes []int, rng *rand.Rand) []int {
	links := make([][]int, g.n)
	linked := make(map[[2]int]bool)
	for pos, r := range assigned {
		if !g.contiguousWithout(assigned, pos, r) {
			continue
		}
		for _, nb := range g.neighbors(pos) {
			nr := assigned[nb]
			if nr != r && !linked[[2]int{r, nr}] {
				linked[[2]int{r, nr}] = true
				links[r] = append(links[r], nr)
			}
		}
	}

	const unvisited, source = -2, -1
	prev := make([]int, g.n)
	var queue []int
	for r := range prev {
		prev[r] = unvisited
		if sizes[r] > g.n {
			prev[r] = source
			queue = append(queue, r)
		}
	}
	rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })

	for head := 0; head < len(queue); head++ {
		r := queue[head]
		next := links[r]
		rng.Shuffle(len(next), func(i, j int) { next[i], next[j] = next[j], next[i] })
		for _, t := range next {
			if prev[t] != unvisited {
				continue
			}
			prev[t] = r
			if sizes[t] < g.n {
				path := []int{t}
				for prev[path[0]] != source {
					path = append([]int{prev[path[0]]}, path...)
				}
				return path
			}
			queue = append(queue, t)
		}
	}
	return nil
}

// shift moves one random cell of region from that borders region to into
// to, keeping from contiguous. It reports whether a cell moved.
func (g grid) shift(assigned, sizes []int, from, to int, rng *rand.Rand) bool {
	var candidates []int
	for pos, r := range assigned {
		if r != from {
			continue
		}
		for _, nb := range g.neighbors(pos) {
			if assigned[nb] == to {
				candidates = append(candidates, pos)
				break
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	for _, pos := range candidates {
		if g.contiguousWithout(assigned, pos, from) {
			assigned[pos] = to
			sizes[from]--
			sizes[to]++
			return true
		}
	}
	return false
}

// contiguousWithout reports whether region r stays connected once pos
// leaves it.
func (g grid) contiguousWithout(assigned []int, pos, r int) bool {
	in := make([]bool, g.cells())
	start, count := -1, 0
	for p, region := range assigned {
		if region == r && p != pos {
			in[p] = true
			count++
			if start < 0 {
				start = p
			}
		}
	}
	if count == 0 {
		return true
	}

	visited := make([]bool, g.cells())
	visited[start] = true
	stack := []int{start}
	reached := 1
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.neighbors(p) {
			if in[nb] && !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
				reached++
			}
		}
	}
	return reached == count
}

// seeds picks one random cell inside each b×b macro box.
func (g grid) seeds(rng *rand.Rand) []int {
	seeds := make([]int, 0, g.n)
	for boxRow := range g.b {
		for boxCol := range g.b {
			r := boxRow*g.b + rng.Intn(g.b)
			c := boxCol*g.b + rng.Intn(g.b)
			seeds = append(seeds, r*g.n+c)
		}
	}
	return seeds
}

func (g grid) neighbors(pos int) []int {
	row, col := pos/g.n, pos%g.n
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, pos-g.n)
	}
	if row < g.n-1 {
		out = append(out, pos+g.n)
	}
	if col > 0 {
		out = append(out, pos-1)
	}
	if col < g.n-1 {
		out = append(out, pos+1)
	}
	return out
}
