package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"gloomcast/internal/config"
	"gloomcast/internal/game/keylatch"
	"gloomcast/internal/terminal"
	"gloomcast/internal/world"
)

func testEngine(t *testing.T) (*Engine, tcell.SimulationScreen) {
	t.Helper()
	wld := &world.World{Map: loadTestMap(t, ringMap(11))}

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(40, 20)
	scr := terminal.Adopt(sim, "green")
	t.Cleanup(scr.Close)

	cfg := &config.Config{}
	cfg.Camera.Position = [2]float64{5.5, 5.5}
	cfg.Render.Minimap = config.MinimapConfig{
		WidthFraction:  1e-9,
		HeightFraction: 1e-9,
		MarginX:        1,
		MarginY:        1,
	}
	return New(cfg, scr, wld), sim
}

func TestEngineStepMovesPlayer(t *testing.T) {
	e, _ := testEngine(t)
	now := time.Now()

	e.input.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), now)
	startX := e.player.Camera().Pos.X
	e.step(0.1, now)

	moved := e.player.Camera().Pos.X - startX
	if moved <= 0 {
		t.Fatalf("player did not move forward: delta %v", moved)
	}
	// Default speed is 3 units a second; a tenth of one moves about 0.3.
	if moved > 0.5 {
		t.Fatalf("player moved %v in one tick, want about 0.3", moved)
	}
}

func TestEngineJumpCarriesTakeoffMovement(t *testing.T) {
	e, _ := testEngine(t)
	now := time.Now()

	// Forward is held at takeoff, then the latch expires mid-air.
	e.input.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), now)
	e.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now)
	if !e.player.Jumping() {
		t.Fatal("space did not start a jump")
	}

	later := now.Add(keylatch.Hold * 2)
	x := e.player.Camera().Pos.X
	e.step(0.05, later)
	if e.player.Camera().Pos.X <= x {
		t.Error("airborne player lost takeoff momentum")
	}

	for i := 0; i < 2*e.player.jumpFrames+1; i++ {
		e.player.Tick()
	}
	if e.player.Jumping() {
		t.Fatal("player still airborne after the full arc")
	}

	x = e.player.Camera().Pos.X
	e.step(0.05, later)
	if e.player.Camera().Pos.X != x {
		t.Error("grounded player moved on an expired key")
	}
}

func TestEngineHandleEvent(t *testing.T) {
	e, _ := testEngine(t)
	now := time.Now()

	e.running = true
	e.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if e.running {
		t.Error("escape did not stop the loop")
	}

	if !e.caster.TexturesOn() {
		t.Fatal("textures start enabled")
	}
	e.handleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), now)
	if e.caster.TexturesOn() {
		t.Error("'t' did not toggle textures off")
	}

	e.handleEvent(tcell.NewEventResize(50, 30), now)
	if w := e.caster.Frame().Width(); w != 50 {
		t.Errorf("frame width after resize = %d, want 50", w)
	}
}

func TestEngineDrawBlits(t *testing.T) {
	e, sim := testEngine(t)

	e.draw()

	// The ring wall ahead covers the horizon row of the center column.
	g, _, _, _ := sim.GetContent(20, 10)
	if g == ' ' {
		t.Error("center of the view blank after a draw")
	}
}
