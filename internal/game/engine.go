package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"gloomcast/internal/camera"
	"gloomcast/internal/config"
	"gloomcast/internal/mathutil"
	"gloomcast/internal/render"
	"gloomcast/internal/telemetry"
	"gloomcast/internal/terminal"
	"gloomcast/internal/world"
)

// Engine owns the frame loop: it pumps terminal events, advances the
// player, casts the frame, and blits it, at the configured tick rate.
type Engine struct {
	cfg    *config.Config
	scr    *terminal.Screen
	player *Player
	caster *render.Caster
	input  *Input
	stats  *FrameStats

	takeoff MoveSet // movement frozen at jump takeoff
	running bool
}

// New builds an engine over an initialized screen and a loaded world.
func New(cfg *config.Config, scr *terminal.Screen, wld *world.World) *Engine {
	pos := mathutil.Vec2{X: cfg.Camera.Position[0], Y: cfg.Camera.Position[1]}
	cam := camera.New(pos, cfg.Camera.Heading, cfg.GetCameraFOV())
	caster := render.NewCaster(cam, wld, cfg)

	w, h := scr.Size()
	caster.Resize(w, h)

	return &Engine{
		cfg:    cfg,
		scr:    scr,
		player: NewPlayer(cam, wld.Map, cfg.GetJumpFrames()),
		caster: caster,
		input:  NewInput(),
		stats:  NewFrameStats(),
	}
}

// Run drives the game until quit or ctx cancellation. Terminal events
// arrive on a pump goroutine, so the tick loop never blocks on input. The
// pump exits when the screen is finalized after Run returns.
func (e *Engine) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.session")
	defer span.End()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := e.scr.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.GetTargetFPS()))
	defer ticker.Stop()

	e.running = true
	last := time.Now()
	for e.running {
		select {
		case <-ctx.Done():
			e.running = false
		case ev, ok := <-events:
			if !ok {
				e.running = false
				break
			}
			e.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			ft := e.stats.StartFrame()
			e.step(dt, now)
			e.draw()
			ft.EndFrame()
		}
	}

	span.SetAttributes(
		attribute.Int64("session.frames", int64(e.stats.Frames())),
		attribute.Float64("session.avg_frame_ms", float64(e.stats.AvgFrameTime().Microseconds())/1000),
		attribute.Float64("session.fps", e.stats.FPS()),
	)
	return nil
}

// handleEvent applies one terminal event.
func (e *Engine) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		e.caster.Resize(w, h)
		e.scr.Sync()
	case *tcell.EventKey:
		switch e.input.HandleKey(ev, now) {
		case Quit:
			e.running = false
		case ToggleTextures:
			e.caster.ToggleTextures()
		case Jump:
			if !e.player.Jumping() {
				// The takeoff movement carries through the whole arc.
				e.takeoff = e.input.Movement(now)
				e.player.Jump()
			}
		}
	}
}

// step advances the simulation by dt seconds. While airborne the takeoff
// movement set applies instead of the live keys; turning stays live.
func (e *Engine) step(dt float64, now time.Time) {
	e.player.Tick()

	moves := e.input.Movement(now)
	if e.player.Jumping() {
		moves = e.takeoff
	}

	dist := e.cfg.GetMoveSpeed() * dt
	if moves.Forward {
		e.player.Move(dist, false)
	}
	if moves.Backward {
		e.player.Move(-dist, false)
	}
	if moves.StrafeLeft {
		e.player.Move(dist, true)
	}
	if moves.StrafeRight {
		e.player.Move(-dist, true)
	}

	if turn := e.input.Turning(now); turn != 0 {
		e.player.Turn(turn * e.cfg.GetRotSpeed() * dt)
	}
}

// draw casts and blits one frame.
func (e *Engine) draw() {
	e.caster.Cast(e.player.Lift())
	e.scr.Blit(e.caster.Frame().Glyphs())
}
