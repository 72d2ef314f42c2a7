// Package sound synthesises the short square-wave cues played on game events.
package sound

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

type Cue int

const (
	CuePortal Cue = iota
	CueCapture
	CueClear
	CueLifeLost
	CueGameOver
	cueCount
)

// note is one step of a cue.
type note struct {
	freq float64 // Hz, 0 for silence
	ms   int
}

var cueNotes = [cueCount][]note{
	CuePortal:   {{220, 60}, {261, 60}},
	CueCapture:  {{523, 70}},
	CueClear:    {{392, 80}, {523, 80}, {659, 120}},
	CueLifeLost: {{196, 120}, {147, 160}},
	CueGameOver: {{261, 150}, {196, 150}, {131, 300}},
}

// Synthesize renders a cue as 16-bit little endian stereo PCM.
func Synthesize(c Cue) []byte {
	if c < 0 || c >= cueCount {
		return nil
	}

	var buf []byte
	for _, n := range cueNotes[c] {
		samples := SampleRate * n.ms / 1000
		for i := 0; i < samples; i++ {
			val := 0.0
			if n.freq > 0 {
				// Linear fade to avoid clicks at note ends
				env := 1 - float64(i)/float64(samples)
				phase := int(float64(i) * n.freq * 2 / SampleRate)
				if phase%2 == 0 {
					val = 0.1 * env
				} else {
					val = -0.1 * env
				}
			}

			v := int16(val * math.MaxInt16)
			buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}
	return buf
}

// Player plays cues through an audio context. A nil *Player is silent.
type Player struct {
	players [cueCount]*audio.Player
}

// NewPlayer pre-renders every cue. volume is 0.0 - 1.0.
func NewPlayer(ctx *audio.Context, volume float64) *Player {
	p := &Player{}
	for c := Cue(0); c < cueCount; c++ {
		pl := ctx.NewPlayerFromBytes(Synthesize(c))
		pl.SetVolume(volume)
		p.players[c] = pl
	}
	return p
}

// Play restarts the cue from the beginning.
func (p *Player) Play(c Cue) {
	if p == nil || c < 0 || c >= cueCount {
		return
	}
	pl := p.players[c]
	if err := pl.Rewind(); err != nil {
		log.Printf("sound: rewind cue %d: %v", c, err)
		return
	}
	pl.Play()
}
