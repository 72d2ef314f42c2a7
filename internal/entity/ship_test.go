package entity

import (
	"math/rand"
	"testing"

	"blackhole/internal/physics"
)

var testBounds = Bounds{Width: 800, Height: 600, Margin: 100}

func TestPlaceShipsInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var ships [2]Ship

	for i := 0; i < 1000; i++ {
		ships[0].Captured, ships[1].Captured = true, true
		PlaceShips(&ships, testBounds, 300, rng)

		for j, s := range ships {
			if !testBounds.Contains(s.Pos) {
				t.Fatalf("Iteration %d: ship %d out of bounds at %v", i, j, s.Pos)
			}
			if s.Captured {
				t.Fatalf("Iteration %d: ship %d still captured", i, j)
			}
		}
		if d := physics.Distance(ships[0].Pos, ships[1].Pos); d < 300 {
			t.Fatalf("Iteration %d: ships only %f apart", i, d)
		}
	}
}

func TestShipMove(t *testing.T) {
	tests := []struct {
		name     string
		captured bool
		want     physics.Vec2
	}{
		{"Free ship moves", false, physics.Vec2{X: 110, Y: 100}},
		{"Captured ship stays", true, physics.Vec2{X: 100, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Ship{Pos: physics.Vec2{X: 100, Y: 100}, Captured: tt.captured}
			s.Move(physics.Vec2{X: 1}, 10)
			if s.Pos != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, s.Pos)
			}
		})
	}
}
