package entity

import "time"

// Background rotates through a fixed set of images, independent of the game.
type Background struct {
	Index int

	count    int
	interval time.Duration
	elapsed  time.Duration
}

func NewBackground(count int, interval time.Duration) Background {
	return Background{count: count, interval: interval}
}

// Visible reports whether there is anything to draw.
func (b *Background) Visible() bool {
	return b.count > 0
}

func (b *Background) Update(dt time.Duration) {
	if b.count == 0 {
		return
	}
	b.elapsed += dt
	if b.elapsed > b.interval {
		b.Index = (b.Index + 1) % b.count
		b.elapsed = 0
	}
}

// Reset restarts the rotation timer, keeping the current image.
func (b *Background) Reset() {
	b.elapsed = 0
}
