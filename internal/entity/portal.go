package entity

import (
	"time"

	"blackhole/internal/physics"
)

// Portal is the player-spawned black hole. While active it cycles through
// its animation frames at a fixed cadence.
type Portal struct {
	Active bool
	Pos    physics.Vec2
	Frame  int

	frameCount int
	delay      time.Duration
	elapsed    time.Duration // since the last frame change
}

// NewPortal creates an inactive portal animating over frameCount frames.
func NewPortal(frameCount int, delay time.Duration) Portal {
	return Portal{frameCount: frameCount, delay: delay}
}

// Open activates the portal at pos, starting from the first frame.
func (p *Portal) Open(pos physics.Vec2) {
	p.Active = true
	p.Pos = pos
	p.Frame = 0
	p.elapsed = 0
}

// Close deactivates the portal.
func (p *Portal) Close() {
	p.Active = false
}

func (p *Portal) Update(dt time.Duration) {
	if !p.Active || p.frameCount == 0 {
		return
	}

	p.elapsed += dt

	if p.elapsed > p.delay {
		p.elapsed = 0
		p.Frame++

		// Loop back to start
		if p.Frame >= p.frameCount {
			p.Frame = 0
		}
	}
}
