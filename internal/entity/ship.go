package entity

import (
	"math/rand"

	"blackhole/internal/physics"
)

// Ship is one of the two spaceships. Its rotation is not stored: it is
// derived from the pair's positions at draw time.
type Ship struct {
	Pos      physics.Vec2
	Captured bool // swallowed by the current portal
}

// Move advances the ship along dir unless it has been captured.
func (s *Ship) Move(dir physics.Vec2, dist float64) {
	if s.Captured {
		return
	}
	s.Pos = s.Pos.Add(dir.Scale(dist))
}

// Bounds is the rectangle ships may spawn in.
type Bounds struct {
	Width, Height float64
	Margin        float64
}

// RandomPosition returns a point inside b, at least Margin away from every edge.
func (b Bounds) RandomPosition(rng *rand.Rand) physics.Vec2 {
	return physics.Vec2{
		X: b.Margin + rng.Float64()*(b.Width-2*b.Margin),
		Y: b.Margin + rng.Float64()*(b.Height-2*b.Margin),
	}
}

// Contains reports whether p lies in the margin-inset rectangle.
func (b Bounds) Contains(p physics.Vec2) bool {
	return p.X >= b.Margin && p.X <= b.Width-b.Margin &&
		p.Y >= b.Margin && p.Y <= b.Height-b.Margin
}

// PlaceShips draws fresh position pairs until the two ships are at least
// minDist apart, then clears both capture flags.
func PlaceShips(ships *[2]Ship, b Bounds, minDist float64, rng *rand.Rand) {
	for {
		ships[0].Pos = b.RandomPosition(rng)
		ships[1].Pos = b.RandomPosition(rng)
		if physics.Distance(ships[0].Pos, ships[1].Pos) >= minDist {
			break
		}
	}
	ships[0].Captured = false
	ships[1].Captured = false
}
