// Package flyer implements Ring Flyer, a side-scrolling arcade game: keep
// a constantly falling flyer airborne with timed flaps and thread it
// through an endless stream of gates. Each gate crossed scores a point and
// tightens the generation parameters; touching a wall or drifting off the
// vertical bounds ends the run, and a fresh run starts on the next tick.
package flyer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/physics"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom configuration file path used by subsequent
// New() calls. Intended for the CLI layer.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset selects the difficulty preset applied on top of the
// loaded configuration.
func SetDifficultyPreset(p config.DifficultyPreset) { difficultyPreset = p }

func init() {
	registry.Register("flyer", func() registry.Game { return New() })
}

// Game is the Ring Flyer session. All coordinates are in world units; the
// camera follows the flyer and the renderer projects the visible window
// onto the terminal.
type Game struct {
	cfg     config.FlyerConfig
	runtime core.RuntimeConfig

	world  *physics.World
	flyer  *FlyerController
	spawn  *Spawner
	drop   *Backdrop
	interp Interpreter
	curve  Curve
	score  ScoreTracker

	upperBound physics.BodyID
	lowerBound physics.BodyID

	state     SessionState
	paused    bool
	params    Params
	lastScore int
	cameraX   float64

	seed int64
	runs int64
	dt   float64
}

// New creates a Ring Flyer game with the loaded configuration, falling
// back to built-in defaults if no configuration can be read.
func New() *Game {
	cfg, err := config.LoadFlyer(configPath)
	if err != nil {
		cfg = config.DefaultFlyerConfig()
	}
	config.ApplyFlyerPreset(&cfg, difficultyPreset)
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "flyer" }

// Title returns the display name.
func (g *Game) Title() string { return "Ring Flyer" }

// Reset initializes the game. The seed makes obstacle generation
// deterministic; a zero seed falls back to the current time.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.dt = 1.0 / float64(g.runtime.TickRate)

	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.runs = 0
	g.paused = false

	g.enterRunning()
}

// enterRunning builds a fresh session: new world, flyer at the origin,
// no obstacles, score zero. Each run derives its RNG from the base seed
// and the run index, so restarts within one Reset produce distinct but
// reproducible obstacle layouts.
func (g *Game) enterRunning() {
	rng := rand.New(rand.NewSource(g.seed + g.runs))
	g.runs++

	g.world = physics.NewWorld(physics.Vec2{Y: g.cfg.Physics.Gravity})
	if g.paused {
		g.world.SetTimeScale(0)
	}

	g.flyer = newFlyerController(g.world, g.cfg.Physics, g.cfg.Player)
	g.spawn = newSpawner(g.world, g.cfg.World, g.cfg.Obstacles, rng)
	g.drop = newBackdrop(g.cfg.World.ScreenW)
	g.interp = newInterpreter(g.cfg.Physics.LethalForce)
	g.curve = NewCurve(g.cfg.Difficulty)
	g.score = ScoreTracker{}

	g.params = g.curve.Params(0)
	g.lastScore = 0
	g.cameraX = 0
	g.state = Running

	g.createBounds()
	g.spawn.SpawnAhead(0, g.params)
}

// createBounds places solid strips above and below the play field. They
// follow the flyer horizontally so the flyer can never outrun them. The
// position check in Step is the authoritative out-of-bounds test; the
// colliders are a physical backstop that also produces a lethal contact.
func (g *Game) createBounds() {
	halfH := g.cfg.World.ScreenH / 2.0
	half := physics.Vec2{X: g.cfg.World.ScreenW, Y: g.cfg.World.BoundsThickness}

	g.upperBound = g.world.CreateBody(physics.BodyDef{
		Type:        physics.Static,
		Pos:         physics.Vec2{Y: halfH + g.cfg.World.BoundsMargin},
		HalfExtents: half,
	})
	g.lowerBound = g.world.CreateBody(physics.BodyDef{
		Type:        physics.Static,
		Pos:         physics.Vec2{Y: -halfH - g.cfg.World.BoundsMargin},
		HalfExtents: half,
	})
}

// exitRunning tears the session down. The world is discarded wholesale;
// nothing from the old run leaks into the next one.
func (g *Game) exitRunning() {
	g.spawn.clear()
	g.flyer.destroy()
	g.world = nil
}

// Step advances the simulation one tick.
//
// If the previous tick ended the session, this tick restarts it instead
// of simulating, so the ended state is observable for exactly one tick.
// Pause freezes physics through the world time scale; jump input is
// honored only while running and unpaused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == Ended || in.Has(core.ActionRestart) {
		g.exitRunning()
		g.enterRunning()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.world.SetTimeScale(0)
		} else {
			g.world.SetTimeScale(1)
		}
	}

	if !g.paused && in.Has(core.ActionJump) {
		g.flyer.Jump()
	}

	collisions, contacts := g.world.Step(g.dt)
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	outcome := g.interp.Interpret(collisions, contacts, g.spawn.OwnsSensor, g.flyer.Body())
	g.score.Add(outcome.ScoreDelta)
	if outcome.Lethal {
		g.flyer.Kill()
	}

	if g.score.Score() != g.lastScore {
		g.params = g.curve.Params(g.score.Score())
		g.lastScore = g.score.Score()
	}

	pos := g.flyer.Position()
	g.cameraX = pos.X

	g.spawn.SpawnAhead(pos.X, g.params)
	g.spawn.Reclaim(pos.X)
	g.drop.Update(g.cameraX)

	g.world.SetPosition(g.upperBound, physics.Vec2{X: pos.X, Y: g.world.Position(g.upperBound).Y})
	g.world.SetPosition(g.lowerBound, physics.Vec2{X: pos.X, Y: g.world.Position(g.lowerBound).Y})

	limit := g.cfg.World.ScreenH/2.0 + g.cfg.World.BoundsMargin
	outOfBounds := pos.Y > limit || pos.Y < -limit

	if !g.flyer.Alive() || outOfBounds {
		g.state = Ended
		return core.StepResult{
			State:      g.State(),
			RunEnded:   true,
			FinalScore: g.score.Score(),
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score.Score(),
		Alive:  g.flyer != nil && g.flyer.Alive(),
		Paused: g.paused,
	}
}
