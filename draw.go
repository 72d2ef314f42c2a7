package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"blackhole/internal/assets"
	"blackhole/internal/config"
	"blackhole/internal/gamemode"
	"blackhole/internal/physics"
)

var (
	ColText = colornames.White
	ColGlow = color.NRGBA{R: colornames.White.R, G: colornames.White.G, B: colornames.White.B, A: config.GlowAlpha}
)

// Art is everything loaded from disk that Draw needs.
type Art struct {
	Ship        *ebiten.Image
	Portal      []*ebiten.Image
	Backgrounds []*ebiten.Image

	hudFace     *text.GoTextFace
	titleFace   *text.GoTextFace
	summaryFace *text.GoTextFace
}

// LoadArt loads the ship sprite and font, which are required, and the
// portal and background sequences, which may come back short or empty.
func LoadArt(m *assets.Manager) (*Art, error) {
	ship, err := m.LoadImage(config.SpriteFile)
	if err != nil {
		return nil, err
	}

	font, err := m.LoadFont(config.FontFile)
	if err != nil {
		return nil, err
	}

	return &Art{
		Ship:        ship,
		Portal:      m.LoadSequence(assets.PortalFrameNames(config.PortalFrames)),
		Backgrounds: m.LoadSequence(assets.BackgroundNames(config.BackgroundCount)),
		hudFace:     &text.GoTextFace{Source: font, Size: config.HUDFontSize},
		titleFace:   &text.GoTextFace{Source: font, Size: config.TitleFontSize},
		summaryFace: &text.GoTextFace{Source: font, Size: config.SummaryFontSize},
	}, nil
}

// Draw renders r without modifying it.
func (a *Art) Draw(screen *ebiten.Image, r *gamemode.Round) {
	// 1. Background
	if r.Background.Visible() && len(a.Backgrounds) > 0 {
		screen.DrawImage(a.Backgrounds[r.Background.Index%len(a.Backgrounds)], nil)
	}

	// 2. Ships
	if r.ShipsVisible() {
		rot0, rot1 := physics.Facing(r.Ships[0].Pos, r.Ships[1].Pos)
		for i, rot := range [2]float64{rot0, rot1} {
			if !r.Ships[i].Captured {
				a.drawShip(screen, r.Ships[i].Pos, rot)
			}
		}
	}

	// 3. Portal
	if r.Portal.Active && len(a.Portal) > 0 {
		frame := a.Portal[r.Portal.Frame%len(a.Portal)]
		drawCentered(screen, frame, r.Portal.Pos, config.PortalScale, 0, nil)
	}

	// 4. HUD or game over
	if r.Phase() != gamemode.PhaseGameOver {
		for i, line := range hudLines(r) {
			op := &text.DrawOptions{}
			op.GeoM.Translate(600, float64(10+30*i))
			op.ColorScale.ScaleWithColor(ColText)
			text.Draw(screen, line, a.hudFace, op)
		}
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, 200)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(ColText)
	text.Draw(screen, "GAME OVER", a.titleFace, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, 300)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = a.summaryFace.Size * 1.2
	op.ColorScale.ScaleWithColor(ColText)
	text.Draw(screen, summaryText(r), a.summaryFace, op)
}

func (a *Art) drawShip(screen *ebiten.Image, pos physics.Vec2, rotation float64) {
	radius := float32(float64(a.Ship.Bounds().Dx()) * config.GlowFactor)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, ColGlow, true)

	var cs ebiten.ColorScale
	cs.ScaleAlpha(config.ShipAlpha / 255.0)
	drawCentered(screen, a.Ship, pos, config.ShipScale, rotation, &cs)
}

// drawCentered draws img with its center on pos, scaled and rotated (degrees).
func drawCentered(screen, img *ebiten.Image, pos physics.Vec2, scale, rotation float64, cs *ebiten.ColorScale) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.Filter = ebiten.FilterLinear
	if cs != nil {
		op.ColorScale = *cs
	}

	screen.DrawImage(img, op)
}

func timeText(r *gamemode.Round) string {
	return fmt.Sprintf("Time: %.2fs", r.Elapsed().Seconds())
}

func hudLines(r *gamemode.Round) [3]string {
	return [3]string{
		fmt.Sprintf("Score: %d", r.Score),
		timeText(r),
		fmt.Sprintf("Lives: %d", r.Lives),
	}
}

func summaryText(r *gamemode.Round) string {
	return fmt.Sprintf("Score: %d\n%s\nClick R to restart the game.", r.Score, timeText(r))
}
