package atlas

import (
	"errors"
	"testing"

	"isoatlas/internal/rgba"
)

// testTiles builds a rescaled sheet (2B-sized tiles) with a few solid
// tiles to composite from.
func testTiles(b int, fills map[Tile]rgba.Pixel) *rgba.Image {
	size := 2 * b
	im := rgba.New(16*size, 16*size)
	for t, p := range fills {
		im.Fill(rgba.Rect{X: t.Col * size, Y: t.Row * size, W: size, H: size}, p)
	}
	return im
}

func TestComposeFullCube(t *testing.T) {
	b := 4
	gray := rgba.Opaque(120, 120, 120)
	tiles := testTiles(b, map[Tile]rgba.Pixel{{Row: 0, Col: 1}: gray})

	im, err := Compose(tiles, UniformCube(Tile{Row: 0, Col: 1}), b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if im.W != 4*b || im.H != 4*b {
		t.Fatalf("sprite is %dx%d, want %dx%d", im.W, im.H, 4*b, 4*b)
	}

	mask := hexMask(b)
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			p := im.At(x, y)
			if mask[y*im.W+x] {
				if p.A != 255 {
					t.Fatalf("hexagon pixel (%d,%d) alpha %d, want 255", x, y, p.A)
				}
			} else if p != rgba.Transparent {
				t.Fatalf("corner pixel (%d,%d) = %+v, want transparent", x, y, p)
			}
		}
	}
}

func TestComposeFaceShading(t *testing.T) {
	b := 4
	gray := rgba.Opaque(200, 100, 50)
	tiles := testTiles(b, map[Tile]rgba.Pixel{{}: gray})

	im, err := Compose(tiles, UniformCube(Tile{}), b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	cases := []struct {
		name string
		face Face
		want rgba.Pixel
	}{
		{"north darkened", FaceN, rgba.Shade(gray, shadeN)},
		{"west darkened", FaceW, rgba.Shade(gray, shadeW)},
		{"top unshaded", FaceU, gray},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := faceOrigin(c.face, b)
			if got := im.At(x, y); got != c.want {
				t.Errorf("pixel at (%d,%d) = %+v, want %+v", x, y, got, c.want)
			}
		})
	}
}

func TestComposeLayerOrder(t *testing.T) {
	b := 2
	under := rgba.Opaque(10, 10, 10)
	over := rgba.Opaque(250, 250, 250)
	tiles := testTiles(b, map[Tile]rgba.Pixel{
		{Row: 0, Col: 0}: under,
		{Row: 0, Col: 1}: over,
	})

	r := Recipe{Layers: []Layer{
		{Tile: Tile{Row: 0, Col: 0}, Surf: SurfU},
		{Tile: Tile{Row: 0, Col: 1}, Surf: SurfU},
	}}
	im, err := Compose(tiles, r, b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	x, y := faceOrigin(FaceU, b)
	if got := im.At(x, y); got != over {
		t.Errorf("top pixel = %+v, want later layer %+v", got, over)
	}
}

func TestComposeTopCut(t *testing.T) {
	b := 4
	gray := rgba.Opaque(90, 90, 90)
	tiles := testTiles(b, map[Tile]rgba.Pixel{{}: gray})

	// Half slab: N and W faces keep only their lower half.
	r := Recipe{Layers: []Layer{
		{Tile: Tile{}, Surf: SurfN, TopCut: 8, Shift: true},
		{Tile: Tile{}, Surf: SurfW, TopCut: 8, Shift: true},
		{Tile: Tile{}, Surf: SurfU, TopCut: 8},
	}}
	im, err := Compose(tiles, r, b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	nx, ny := faceOrigin(FaceN, b)
	if got := im.At(nx, ny); got.A != 0 {
		t.Errorf("cut-away side pixel (%d,%d) alpha %d, want 0", nx, ny, got.A)
	}
	if got := im.At(nx, ny+b); got.A != 255 {
		t.Errorf("kept side pixel (%d,%d) alpha %d, want 255", nx, ny+b, got.A)
	}
	// The top diamond drops by the cut amount.
	ux, uy := faceOrigin(FaceU, b)
	if got := im.At(ux, uy); got.A != 0 {
		t.Errorf("old top pixel (%d,%d) alpha %d, want 0", ux, uy, got.A)
	}
	if got := im.At(ux, uy+b); got.A != 255 {
		t.Errorf("lowered top pixel (%d,%d) alpha %d, want 255", ux, uy+b, got.A)
	}
}

func TestComposeCross(t *testing.T) {
	b := 4
	green := rgba.Opaque(40, 180, 40)
	tiles := testTiles(b, map[Tile]rgba.Pixel{{Row: 0, Col: 7}: green})

	r := Recipe{Layers: []Layer{{Tile: Tile{Row: 0, Col: 7}, Surf: SurfCross}}}
	im, err := Compose(tiles, r, b)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	painted := 0
	mask := hexMask(b)
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			if im.At(x, y).A != 0 {
				painted++
				if !mask[y*im.W+x] {
					t.Fatalf("cross pixel (%d,%d) outside hexagon survived masking", x, y)
				}
			}
		}
	}
	if painted == 0 {
		t.Fatal("cross recipe painted nothing")
	}
}

func TestComposeTileOutOfBounds(t *testing.T) {
	b := 2
	tiles := testTiles(b, nil)

	cases := []Tile{
		{Row: 16, Col: 0},
		{Row: 0, Col: 16},
		{Row: -1, Col: 0},
	}
	for _, c := range cases {
		r := Recipe{Layers: []Layer{{Tile: c, Surf: SurfU}}}
		if _, err := Compose(tiles, r, b); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("tile (%d,%d): err = %v, want ErrOutOfBounds", c.Row, c.Col, err)
		}
	}
}
