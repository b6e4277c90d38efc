package flyer

// ObstacleTransform is a gate's pose for rendering and inspection.
type ObstacleTransform struct {
	X       float64
	YMid    float64
	HalfGap float64
}

// TileTransform is a background tile's pose.
type TileTransform struct {
	X float64
}

// Snapshot is a read-only view of the session for rendering and tests.
type Snapshot struct {
	Score    int
	Alive    bool
	Paused   bool
	FlyerX   float64
	FlyerY   float64
	Rotation float64
	CameraX  float64

	Obstacles []ObstacleTransform
	Tiles     []TileTransform
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Score:   g.score.Score(),
		Alive:   g.flyer != nil && g.flyer.Alive(),
		Paused:  g.paused,
		CameraX: g.cameraX,
	}

	if g.flyer != nil {
		pos := g.flyer.Position()
		snap.FlyerX = pos.X
		snap.FlyerY = pos.Y
		snap.Rotation = g.flyer.Rotation()
	}

	if g.spawn != nil {
		for _, o := range g.spawn.Obstacles() {
			snap.Obstacles = append(snap.Obstacles, ObstacleTransform{
				X:       o.X,
				YMid:    o.YMid,
				HalfGap: o.HalfGap,
			})
		}
	}
	if g.drop != nil {
		for _, t := range g.drop.Tiles() {
			snap.Tiles = append(snap.Tiles, TileTransform{X: t.X})
		}
	}

	return snap
}
