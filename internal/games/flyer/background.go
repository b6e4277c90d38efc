package flyer

import "math"

// BackgroundTile is one screen-wide strip of scenery. Tiles carry no
// physics bodies; they exist only so the renderer can scroll a seamless
// backdrop past the camera.
type BackgroundTile struct {
	X float64 // Left edge in world coordinates
}

// Backdrop keeps a window of background tiles covering the camera view.
// Tiles spawn flush against the rightmost existing tile and are dropped
// once they fall far enough behind the camera.
type Backdrop struct {
	screenW float64
	tiles   []BackgroundTile
}

func newBackdrop(screenW float64) *Backdrop {
	return &Backdrop{
		screenW: screenW,
		tiles:   []BackgroundTile{{X: -screenW}},
	}
}

// frontier returns the right edge of the rightmost tile.
func (b *Backdrop) frontier() float64 {
	maxRight := math.Inf(-1)
	for _, t := range b.tiles {
		if right := t.X + b.screenW; right > maxRight {
			maxRight = right
		}
	}
	if math.IsInf(maxRight, -1) {
		return 0
	}
	return maxRight
}

// Update extends coverage ahead of the camera and reclaims tiles behind
// it. At most one tile spawns per call; coverage catches up over a few
// ticks after a large camera jump.
func (b *Backdrop) Update(cameraX float64) {
	if b.frontier() < cameraX+b.screenW {
		b.tiles = append(b.tiles, BackgroundTile{X: b.frontier()})
	}

	kept := b.tiles[:0]
	for _, t := range b.tiles {
		if t.X+b.screenW >= cameraX-2*b.screenW {
			kept = append(kept, t)
		}
	}
	b.tiles = kept
}

// Tiles returns the active tiles.
func (b *Backdrop) Tiles() []BackgroundTile {
	return b.tiles
}
