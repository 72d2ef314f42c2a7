package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"blackhole/internal/assets"
	"blackhole/internal/config"
	"blackhole/internal/sound"
)

func main() {
	settings := config.LoadSettings()

	// 1. Window Setup
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	// 2. Assets
	art, err := LoadArt(assets.NewManager(os.DirFS(settings.AssetDir)))
	if err != nil {
		log.Fatal(err)
	}

	var sounds *sound.Player
	if !settings.Mute {
		sounds = sound.NewPlayer(audio.NewContext(sound.SampleRate), settings.Volume)
	}

	// 3. Initialize Game
	game := NewGame(art, sounds, rand.New(rand.NewSource(settings.Seed)))

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(runError(err, sounds != nil))
	}
}

// runError points at BLACKHOLE_MUTE when the loop stopped with audio on,
// since a missing output device surfaces here rather than at NewContext.
func runError(err error, audioOn bool) error {
	if !audioOn {
		return err
	}
	return fmt.Errorf("%w (set BLACKHOLE_MUTE=1 to play without sound)", err)
}
