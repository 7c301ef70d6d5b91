package atlas

import (
	"errors"
	"fmt"

	"isoatlas/internal/rgba"
)

// Side faces are darkened so the three faces of a block read as lit from
// above, matching the original asset style.
const (
	shadeN = 0.9
	shadeW = 0.8
)

// ErrOutOfBounds is returned when a recipe layer references a source
// region outside its sheet.
var ErrOutOfBounds = errors.New("source region out of bounds")

// Tile addresses one square texture within a sheet's 16 x 16 grid.
type Tile struct {
	Row, Col int
}

// Surface is a destination painting surface within a sprite cell.
type Surface int

const (
	// The three hexagon faces.
	SurfN Surface = iota
	SurfW
	SurfU
	// Two upright flats crossing at the block center (flora, torches).
	SurfCross
	// A single upright face pressed against one side of the block
	// (signs, ladders); named by the side it faces.
	SurfBillS
	SurfBillN
	SurfBillW
	SurfBillE
)

// Layer is one paint step of a sprite recipe: a source tile drawn onto
// one surface. Later layers blend alpha-over earlier ones.
type Layer struct {
	Tile  Tile
	Surf  Surface
	Rot   Rotation
	FlipX bool

	// Shade overrides the surface's default color multiplier when > 0.
	Shade float64

	// TopCut and BotCut trim the block height in 16ths of a tile, for
	// slabs, snow, fluid levels and the like. Shift samples the source
	// from its top row even when the top is cut.
	TopCut, BotCut int
	Shift          bool
}

// Recipe is the ordered layer list that composites one sprite.
type Recipe struct {
	Layers []Layer
}

// Cube is a shorthand recipe for a plain full block with the given
// N, W and U face tiles.
func Cube(n, w, u Tile) Recipe {
	return Recipe{Layers: []Layer{
		{Tile: n, Surf: SurfN},
		{Tile: w, Surf: SurfW},
		{Tile: u, Surf: SurfU},
	}}
}

// UniformCube is a Cube using the same tile on all three faces.
func UniformCube(t Tile) Recipe {
	return Cube(t, t, t)
}

// Compose renders one sprite from its recipe onto a fresh 4B x 4B canvas.
// tiles must be a sheet already rescaled to 2B-sized tiles (32B x 32B).
// The area outside the hexagon is left fully transparent.
func Compose(tiles *rgba.Image, r Recipe, b int) (*rgba.Image, error) {
	size := 2 * b
	dst := rgba.New(4*b, 4*b)

	for _, l := range r.Layers {
		if l.Tile.Row < 0 || l.Tile.Row >= 16 || l.Tile.Col < 0 || l.Tile.Col >= 16 ||
			(l.Tile.Col+1)*size > tiles.W || (l.Tile.Row+1)*size > tiles.H {
			return nil, fmt.Errorf("layer tile (%d,%d): %w", l.Tile.Row, l.Tile.Col, ErrOutOfBounds)
		}
		paintLayer(dst, tiles, l, b)
	}

	// Force the cell corners transparent; crossed flats and billboards
	// can spill past the hexagon.
	mask := hexMask(b)
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			if !mask[y*dst.W+x] {
				dst.Set(x, y, rgba.Transparent)
			}
		}
	}
	return dst, nil
}

func paintLayer(dst, tiles *rgba.Image, l Layer, b int) {
	size := 2 * b
	sx, sy := l.Tile.Col*size, l.Tile.Row*size

	shade := l.Shade
	if shade == 0 {
		switch l.Surf {
		case SurfN:
			shade = shadeN
		case SurfW:
			shade = shadeW
		default:
			shade = 1
		}
	}

	topCut := l.TopCut * size / 16
	botCut := l.BotCut * size / 16
	if topCut+botCut >= size {
		return
	}
	end := size - botCut

	switch l.Surf {
	case SurfN, SurfW:
		skew := 1
		if l.Surf == SurfW {
			skew = -1
		}
		ox, oy := faceOrigin(l.Surf.face(), b)
		dit := newSideIter(ox, oy, skew, size)
		for sit := newSrcIter(sx, sy, l.Rot, size, l.FlipX); !sit.Done; sit.Advance() {
			if dit.Pos%size >= topCut && dit.Pos%size < end {
				srcY := sit.Y
				if l.Shift {
					srcY -= topCut
				}
				blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, srcY), shade)
			}
			dit.Advance()
		}

	case SurfU:
		ox, oy := faceOrigin(FaceU, b)
		dit := newTopIter(ox, oy+topCut, size)
		for sit := newSrcIter(sx, sy, l.Rot, size, l.FlipX); !sit.Done; sit.Advance() {
			blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, sit.Y), shade)
			dit.Advance()
		}

	case SurfCross:
		paintCross(dst, tiles, sx, sy, b, shade)

	case SurfBillS, SurfBillN, SurfBillW, SurfBillE:
		ox, oy, skew := billboardOrigin(l.Surf, b)
		dit := newSideIter(ox, oy, skew, size)
		for sit := newSrcIter(sx, sy, l.Rot, size, l.FlipX); !sit.Done; sit.Advance() {
			blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, sit.Y), shade)
			dit.Advance()
		}
	}
}

// paintCross draws two upright flats of the same tile intersecting at the
// block center. The E/W flat is split around the N/S one so the two
// halves layer plausibly.
func paintCross(dst, tiles *rgba.Image, sx, sy, b int, shade float64) {
	size := 2 * b
	half := size / 2

	// E/W flat, southern half.
	dit := newSideIter(b, b*3/2, -1, size)
	for sit := newSrcIter(sx, sy, Rot0, size, false); !sit.Done; sit.Advance() {
		if dit.Pos/size >= half {
			blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, sit.Y), shade)
		}
		dit.Advance()
	}
	// N/S flat.
	dit = newSideIter(b, b/2, 1, size)
	for sit := newSrcIter(sx, sy, Rot0, size, false); !sit.Done; sit.Advance() {
		blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, sit.Y), shade)
		dit.Advance()
	}
	// E/W flat, northern half.
	dit = newSideIter(b, b*3/2, -1, size)
	for sit := newSrcIter(sx, sy, Rot0, size, false); !sit.Done; sit.Advance() {
		if dit.Pos/size < half {
			blendShaded(dst, dit.X, dit.Y, tiles.At(sit.X, sit.Y), shade)
		}
		dit.Advance()
	}
}

// billboardOrigin returns the start position and skew for a single
// upright face pressed against one side of the block.
func billboardOrigin(s Surface, b int) (x, y, skew int) {
	switch s {
	case SurfBillS:
		return 2 * b, 0, 1
	case SurfBillN:
		return 0, b, 1
	case SurfBillW:
		return 2 * b, 2 * b, -1
	default: // SurfBillE
		return 0, b, -1
	}
}

func (s Surface) face() Face {
	switch s {
	case SurfN:
		return FaceN
	case SurfW:
		return FaceW
	default:
		return FaceU
	}
}

func blendShaded(dst *rgba.Image, x, y int, src rgba.Pixel, shade float64) {
	if x < 0 || x >= dst.W || y < 0 || y >= dst.H {
		return
	}
	if shade != 1 {
		src = rgba.Shade(src, shade)
	}
	dst.Set(x, y, rgba.Blend(dst.At(x, y), src))
}
