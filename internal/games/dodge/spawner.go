package dodge

import (
	"math/rand"
	"time"
)

// Spawner picks random positions inside the canvas.
type Spawner struct {
	rng    *rand.Rand
	width  float64
	height float64
}

// NewSpawner creates a spawner for a canvas of the given size.
func NewSpawner(seed int64, width, height float64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
}

// RandomPosition returns a uniformly random top-left corner such that a w x h
// box placed there stays inside the canvas. If the box is larger than the
// canvas on an axis, that coordinate is 0.
func (s *Spawner) RandomPosition(w, h float64) (float64, float64) {
	x := s.rng.Float64() * max(0, s.width-w)
	y := s.rng.Float64() * max(0, s.height-h)
	return x, y
}

// EnemyGrowth decides when a new enemy joins, based on elapsed game time.
// Each boundary fires once: the next boundary moves forward after it fires.
type EnemyGrowth struct {
	every time.Duration
	next  time.Duration
}

// NewEnemyGrowth creates a growth schedule firing every interval.
func NewEnemyGrowth(every time.Duration) EnemyGrowth {
	return EnemyGrowth{every: every, next: every}
}

// Due reports whether elapsed has reached the next boundary and, if so,
// schedules the one after it.
func (g *EnemyGrowth) Due(elapsed time.Duration) bool {
	if g.every <= 0 || elapsed < g.next {
		return false
	}
	g.next += g.every
	return true
}

// Reset restarts the schedule from zero elapsed time.
func (g *EnemyGrowth) Reset() {
	g.next = g.every
}
