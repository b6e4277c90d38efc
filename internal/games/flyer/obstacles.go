package flyer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/physics"
)

// Obstacle is one gate: an upper and lower solid wall with a scoring
// sensor spanning the open interval between them. The three bodies are
// owned as a unit and destroyed together. Geometry is frozen at spawn
// time from the difficulty parameters then in effect.
type Obstacle struct {
	X       float64 // Horizontal position, fixed for the obstacle's lifetime
	YMid    float64 // Gate center
	HalfGap float64 // Gate open half-height

	upper  physics.BodyID
	lower  physics.BodyID
	sensor physics.BodyID
}

// Spawner materializes obstacles ahead of the flyer and reclaims ones
// that have scrolled behind it, keeping a bounded window of gates around
// the flyer's position.
type Spawner struct {
	world *physics.World
	rng   *rand.Rand

	halfScreen float64
	lookahead  float64
	geometry   config.FlyerObstacles

	obstacles []Obstacle
	sensors   map[physics.BodyID]struct{}
}

func newSpawner(world *physics.World, worldCfg config.FlyerWorld, geometry config.FlyerObstacles, rng *rand.Rand) *Spawner {
	return &Spawner{
		world:      world,
		rng:        rng,
		halfScreen: worldCfg.ScreenW / 2.0,
		lookahead:  worldCfg.LookaheadMargin,
		geometry:   geometry,
		obstacles:  make([]Obstacle, 0, 8),
		sensors:    make(map[physics.BodyID]struct{}, 8),
	}
}

// frontier returns the largest horizontal position among existing
// obstacles, or negative infinity if none exist.
func (s *Spawner) frontier() float64 {
	maxX := math.Inf(-1)
	for i := range s.obstacles {
		if s.obstacles[i].X > maxX {
			maxX = s.obstacles[i].X
		}
	}
	return maxX
}

// SpawnAhead materializes at most one obstacle just past the visible
// screen edge if doing so respects the minimum spacing. Spawn positions
// grow with the flyer's position, so obstacles are monotonically
// increasing in x and consecutive gates are never closer than the
// MinXBetween in effect at the later gate's spawn.
func (s *Spawner) SpawnAhead(flyerX float64, p Params) {
	screenEdge := flyerX + s.halfScreen
	candidate := screenEdge + s.lookahead

	if candidate-s.frontier() < p.MinXBetween {
		return
	}

	yMid := p.YMidLow + s.rng.Float64()*(p.YMidHigh-p.YMidLow)
	s.materialize(candidate, yMid, p.YMidOffset)
}

// materialize creates the gate's three bodies. Walls sit just inside the
// gap edges; the sensor spans the open interval.
func (s *Spawner) materialize(x, yMid, halfGap float64) {
	wallHalf := physics.Vec2{X: s.geometry.Width / 5.0, Y: s.geometry.WallHeight}

	upper := s.world.CreateBody(physics.BodyDef{
		Type:        physics.Static,
		Pos:         physics.Vec2{X: x, Y: yMid + halfGap - s.geometry.WallHeight},
		HalfExtents: wallHalf,
	})
	lower := s.world.CreateBody(physics.BodyDef{
		Type:        physics.Static,
		Pos:         physics.Vec2{X: x, Y: yMid - halfGap + s.geometry.WallHeight},
		HalfExtents: wallHalf,
	})
	sensor := s.world.CreateBody(physics.BodyDef{
		Type:        physics.Static,
		Pos:         physics.Vec2{X: x, Y: yMid},
		HalfExtents: physics.Vec2{X: s.geometry.SensorWidth, Y: halfGap},
		Sensor:      true,
	})

	s.sensors[sensor] = struct{}{}
	s.obstacles = append(s.obstacles, Obstacle{
		X:       x,
		YMid:    yMid,
		HalfGap: halfGap,
		upper:   upper,
		lower:   lower,
		sensor:  sensor,
	})
}

// Reclaim destroys every obstacle that has fallen more than a screen half
// plus the lookahead margin behind the flyer. Such gates can never be
// scored or collided with again. Returns the number destroyed; running
// it twice without flyer movement destroys nothing the second time.
func (s *Spawner) Reclaim(flyerX float64) int {
	cutoff := flyerX - s.halfScreen - s.lookahead

	kept := s.obstacles[:0]
	destroyed := 0
	for _, o := range s.obstacles {
		if o.X >= cutoff {
			kept = append(kept, o)
			continue
		}
		s.destroyObstacle(o)
		destroyed++
	}
	s.obstacles = kept
	return destroyed
}

func (s *Spawner) destroyObstacle(o Obstacle) {
	s.world.DestroyBody(o.upper)
	s.world.DestroyBody(o.lower)
	s.world.DestroyBody(o.sensor)
	delete(s.sensors, o.sensor)
}

// OwnsSensor reports whether the body is one of the spawner's scoring
// sensors.
func (s *Spawner) OwnsSensor(id physics.BodyID) bool {
	_, ok := s.sensors[id]
	return ok
}

// Obstacles returns the currently active gates.
func (s *Spawner) Obstacles() []Obstacle {
	return s.obstacles
}

// clear destroys every remaining obstacle. Used on session exit.
func (s *Spawner) clear() {
	for _, o := range s.obstacles {
		s.destroyObstacle(o)
	}
	s.obstacles = s.obstacles[:0]
}
