package gamemode

import (
	"math/rand"
	"time"

	"blackhole/internal/config"
	"blackhole/internal/entity"
	"blackhole/internal/physics"
)

type Phase int

const (
	PhaseChasing      Phase = iota // ships closing in, no portal
	PhasePortalActive              // portal open, ships still moving
	PhaseBothCaptured              // round won, short pause before the next
	PhaseGameOver                  // out of lives, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseChasing:
		return "chasing"
	case PhasePortalActive:
		return "portal"
	case PhaseBothCaptured:
		return "captured"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Event is something that happened during a single Update.
type Event int

const (
	EventPortalOpened Event = iota
	EventShipCaptured
	EventRoundCleared
	EventLifeLost
	EventGameOver
	EventRestarted
)

// Input is the player input sampled once per frame.
type Input struct {
	Click   bool
	ClickAt physics.Vec2
	Restart bool
}

// Rules are the tunables of a round. DefaultRules matches the shipped game.
type Rules struct {
	Bounds            entity.Bounds
	MinSeparation     float64
	CollisionDistance float64
	CaptureDistance   float64
	InitialLives      int
	InitialSpeed      float64
	SpeedIncrement    float64
	TransitionPause   time.Duration
	PortalFrames      int
	PortalFrameDelay  time.Duration
	Backgrounds       int
	BackgroundDelay   time.Duration
}

func DefaultRules() Rules {
	return Rules{
		Bounds: entity.Bounds{
			Width:  config.ScreenWidth,
			Height: config.ScreenHeight,
			Margin: config.ShipMargin,
		},
		MinSeparation:     config.MinShipSeparation,
		CollisionDistance: config.CollisionDistance,
		CaptureDistance:   config.CaptureDistance,
		InitialLives:      config.InitialLives,
		InitialSpeed:      config.InitialSpeed,
		SpeedIncrement:    config.SpeedIncrement,
		TransitionPause:   config.TransitionPause,
		PortalFrames:      config.PortalFrames,
		PortalFrameDelay:  config.PortalFrameDelay,
		Backgrounds:       config.BackgroundCount,
		BackgroundDelay:   config.BackgroundInterval,
	}
}

// Round owns all mutable game state. Update mutates it; renderers only read.
type Round struct {
	Ships      [2]entity.Ship
	Portal     entity.Portal
	Background entity.Background

	Lives int
	Score int
	Speed float64

	elapsed  time.Duration
	final    time.Duration
	gameOver bool

	// Remaining pause while both ships are captured; zero when not transitioning.
	transition time.Duration
	transiting bool

	events []Event
	rules  Rules
	rng    *rand.Rand
}

func NewRound(rules Rules, rng *rand.Rand) *Round {
	r := &Round{
		Portal:     entity.NewPortal(rules.PortalFrames, rules.PortalFrameDelay),
		Background: entity.NewBackground(rules.Backgrounds, rules.BackgroundDelay),
		rules:      rules,
		rng:        rng,
	}
	r.reset()
	return r
}

func (r *Round) Rules() Rules { return r.rules }

// Phase derives the current state machine position from the round's flags.
func (r *Round) Phase() Phase {
	switch {
	case r.gameOver:
		return PhaseGameOver
	case r.transiting:
		return PhaseBothCaptured
	case r.Portal.Active:
		return PhasePortalActive
	}
	return PhaseChasing
}

// Elapsed is the displayed play time, frozen once the game is over.
func (r *Round) Elapsed() time.Duration {
	if r.gameOver {
		return r.final
	}
	return r.elapsed
}

// TransitionRemaining reports how much of the post-capture pause is left.
func (r *Round) TransitionRemaining() (time.Duration, bool) {
	return r.transition, r.transiting
}

// Events returns what happened during the last Update.
func (r *Round) Events() []Event {
	return r.events
}

// Direction is the unit vector from the first ship to the second.
func (r *Round) Direction() physics.Vec2 {
	return physics.Normalize(r.Ships[1].Pos.Sub(r.Ships[0].Pos))
}

// ShipsVisible reports whether free ships should be drawn this frame.
func (r *Round) ShipsVisible() bool {
	return !r.gameOver && !r.transiting
}

// Restart returns to a fresh game from any phase.
func (r *Round) Restart() {
	r.reset()
	r.Background.Reset()
	r.emit(EventRestarted)
}

func (r *Round) reset() {
	r.Score = 0
	r.Lives = r.rules.InitialLives
	r.Speed = r.rules.InitialSpeed
	r.elapsed = 0
	r.final = 0
	r.gameOver = false
	r.transition = 0
	r.transiting = false
	r.Portal.Close()
	r.placeShips()
}

func (r *Round) placeShips() {
	entity.PlaceShips(&r.Ships, r.rules.Bounds, r.rules.MinSeparation, r.rng)
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

// Update applies one frame of input and advances the round by dt.
func (r *Round) Update(in Input, dt time.Duration) {
	r.events = r.events[:0]

	// 1. Input
	if in.Click && !r.gameOver && !r.Portal.Active {
		r.Portal.Open(in.ClickAt)
		r.emit(EventPortalOpened)
	}
	if in.Restart {
		r.Restart()
		// The frame that restarts starts the clocks from zero.
		dt = 0
	}

	r.Background.Update(dt)

	if !r.gameOver {
		r.elapsed += dt
		r.updatePlaying(dt)
	}

	r.Portal.Update(dt)
}

func (r *Round) updatePlaying(dt time.Duration) {
	a, b := &r.Ships[0], &r.Ships[1]

	// Movement: the first ship heads for the second, the second for the first.
	dir := r.Direction()
	step := r.Speed * dt.Seconds()
	a.Move(dir, step)
	b.Move(dir.Scale(-1), step)

	// Collision without a portal costs a life.
	if !r.transiting && !r.Portal.Active && !a.Captured && !b.Captured &&
		physics.Within(a.Pos, b.Pos, r.rules.CollisionDistance) {
		r.loseLife()
		return
	}

	// Capture
	if r.Portal.Active && !r.transiting {
		for i := range r.Ships {
			s := &r.Ships[i]
			if !s.Captured && physics.Within(s.Pos, r.Portal.Pos, r.rules.CaptureDistance) {
				s.Captured = true
				r.emit(EventShipCaptured)
			}
		}
		if a.Captured && b.Captured {
			r.transiting = true
			r.transition = r.rules.TransitionPause
			r.Score++
			r.Speed += r.rules.SpeedIncrement
			r.emit(EventRoundCleared)
		}
		return
	}

	// Pause before the next round
	if r.transiting {
		r.transition -= dt
		if r.transition < 0 {
			r.nextRound()
		}
	}
}

func (r *Round) loseLife() {
	r.Lives--
	if r.Lives <= 0 {
		r.Lives = 0
		r.gameOver = true
		r.final = r.elapsed
		r.emit(EventGameOver)
		return
	}
	r.emit(EventLifeLost)
	r.nextRound()
}

func (r *Round) nextRound() {
	r.placeShips()
	r.Portal.Close()
	r.transiting = false
	r.transition = 0
}
