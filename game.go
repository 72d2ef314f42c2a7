package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"blackhole/internal/config"
	"blackhole/internal/gamemode"
	"blackhole/internal/physics"
	"blackhole/internal/sound"
)

// Game adapts the round state machine to ebiten's loop.
type Game struct {
	round      *gamemode.Round
	art        *Art
	sounds     *sound.Player
	lastUpdate time.Time
}

func NewGame(art *Art, sounds *sound.Player, rng *rand.Rand) *Game {
	rules := gamemode.DefaultRules()
	rules.PortalFrames = len(art.Portal)
	rules.Backgrounds = len(art.Backgrounds)

	return &Game{
		round:      gamemode.NewRound(rules, rng),
		art:        art,
		sounds:     sounds,
		lastUpdate: time.Now(),
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	g.round.Update(pollInput(), dt)

	for _, e := range g.round.Events() {
		if cue, ok := eventCues[e]; ok {
			g.sounds.Play(cue)
		}
	}
	return nil
}

var eventCues = map[gamemode.Event]sound.Cue{
	gamemode.EventPortalOpened: sound.CuePortal,
	gamemode.EventShipCaptured: sound.CueCapture,
	gamemode.EventRoundCleared: sound.CueClear,
	gamemode.EventLifeLost:     sound.CueLifeLost,
	gamemode.EventGameOver:     sound.CueGameOver,
}

func pollInput() gamemode.Input {
	var in gamemode.Input

	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			in.Click = true
			in.ClickAt = physics.Vec2{X: float64(x), Y: float64(y)}
			break
		}
	}

	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	return in
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.art.Draw(screen, g.round)
}

// Layout: fixed logical resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
