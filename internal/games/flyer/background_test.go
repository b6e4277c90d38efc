package flyer

import "testing"

func TestBackdropCoversCamera(t *testing.T) {
	b := newBackdrop(1280)

	for camera := 0.0; camera < 50_000; camera += 150 {
		b.Update(camera)

		covered := false
		for _, tile := range b.Tiles() {
			if tile.X <= camera && camera < tile.X+1280 {
				covered = true
				break
			}
		}
		if !covered {
			t.Fatalf("camera %v not covered by any tile", camera)
		}
	}
}

func TestBackdropReclaimsBehindCamera(t *testing.T) {
	b := newBackdrop(1280)

	for camera := 0.0; camera < 50_000; camera += 150 {
		b.Update(camera)
	}

	tiles := b.Tiles()
	if len(tiles) > 5 {
		t.Errorf("tile window grew to %d tiles", len(tiles))
	}
	for _, tile := range tiles {
		if tile.X+1280 < 50_000-2*1280-150 {
			t.Errorf("stale tile at %v survived", tile.X)
		}
	}
}

func TestBackdropTilesSeamless(t *testing.T) {
	b := newBackdrop(1280)
	for camera := 0.0; camera < 20_000; camera += 100 {
		b.Update(camera)

		tiles := b.Tiles()
		for i := 1; i < len(tiles); i++ {
			if tiles[i].X != tiles[i-1].X+1280 {
				t.Fatalf("gap between tiles %d and %d: %v -> %v",
					i-1, i, tiles[i-1].X, tiles[i].X)
			}
		}
	}
}
