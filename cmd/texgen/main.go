// texgen generates synthetic source sheets (terrain.png and pipes.png)
// so the atlas pipeline can be exercised without real game assets. Tile
// textures are simplex-noise variations of a base color, matching the
// coordinates the sprite catalog expects.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"isoatlas/internal/rgba"
)

const defaultTileSize = 16

// style selects how a tile's texture is synthesized.
type style int

const (
	styleSolid  style = iota // noise-shaded base color
	styleSpeck               // base color with blobs of an accent color (ores)
	styleBorder              // mostly transparent with an opaque frame (glass)
	styleCross               // sparse opaque strokes on transparency (flora)
	styleFluid               // uniformly translucent base color
)

// tileSpec describes one tile of a sheet's 16 x 16 grid. Coordinates
// mirror the catalog's tile table; unlisted tiles stay transparent.
type tileSpec struct {
	row, col int
	style    style
	base     rgba.Pixel
	accent   rgba.Pixel
}

var terrainTiles = []tileSpec{
	{0, 0, styleSolid, rgba.Opaque(96, 160, 60), rgba.Pixel{}},    // grass top
	{0, 1, styleSolid, rgba.Opaque(128, 128, 128), rgba.Pixel{}},  // stone
	{0, 2, styleSolid, rgba.Opaque(134, 96, 67), rgba.Pixel{}},    // dirt
	{0, 3, styleSolid, rgba.Opaque(110, 108, 62), rgba.Pixel{}},   // grass side
	{0, 4, styleSolid, rgba.Opaque(157, 128, 79), rgba.Pixel{}},   // planks
	{0, 5, styleSolid, rgba.Opaque(168, 168, 168), rgba.Pixel{}},  // slab side
	{0, 6, styleSolid, rgba.Opaque(200, 200, 200), rgba.Pixel{}},  // slab top
	{0, 7, styleSolid, rgba.Opaque(150, 86, 68), rgba.Pixel{}},    // brick
	{0, 8, styleSpeck, rgba.Opaque(180, 60, 50), rgba.Opaque(220, 220, 220)}, // TNT side
	{0, 9, styleSolid, rgba.Opaque(160, 60, 50), rgba.Pixel{}},    // TNT top
	{0, 13, styleCross, rgba.Opaque(220, 200, 40), rgba.Opaque(60, 140, 40)}, // flower
	{0, 15, styleCross, rgba.Opaque(70, 140, 50), rgba.Opaque(96, 72, 40)},   // sapling

	{1, 0, styleSpeck, rgba.Opaque(120, 120, 120), rgba.Opaque(90, 90, 90)},  // cobblestone
	{1, 1, styleSolid, rgba.Opaque(80, 80, 80), rgba.Pixel{}},     // bedrock
	{1, 2, styleSolid, rgba.Opaque(219, 207, 160), rgba.Pixel{}},  // sand
	{1, 3, styleSpeck, rgba.Opaque(150, 140, 136), rgba.Opaque(120, 110, 106)}, // gravel
	{1, 4, styleSolid, rgba.Opaque(102, 81, 50), rgba.Pixel{}},    // log side
	{1, 5, styleSolid, rgba.Opaque(152, 123, 77), rgba.Pixel{}},   // log top
	{1, 6, styleSolid, rgba.Opaque(220, 220, 220), rgba.Pixel{}},  // iron block
	{1, 7, styleSolid, rgba.Opaque(250, 210, 80), rgba.Pixel{}},   // gold block
	{1, 12, styleCross, rgba.Opaque(200, 170, 120), rgba.Opaque(150, 120, 90)},  // brown mushroom
	{1, 13, styleCross, rgba.Opaque(210, 60, 60), rgba.Opaque(230, 230, 230)},   // red mushroom

	{2, 0, styleSpeck, rgba.Opaque(128, 128, 128), rgba.Opaque(250, 210, 80)},   // gold ore
	{2, 1, styleSpeck, rgba.Opaque(128, 128, 128), rgba.Opaque(216, 170, 140)},  // iron ore
	{2, 2, styleSpeck, rgba.Opaque(128, 128, 128), rgba.Opaque(50, 50, 50)},     // coal ore
	{2, 3, styleSpeck, rgba.Opaque(128, 128, 128), rgba.Opaque(120, 220, 230)},  // diamond ore
	{2, 4, styleSpeck, rgba.Opaque(110, 120, 100), rgba.Opaque(80, 130, 70)},    // mossy cobble
	{2, 5, styleSolid, rgba.Opaque(40, 34, 60), rgba.Pixel{}},     // obsidian

	{3, 0, styleSolid, rgba.Opaque(196, 192, 80), rgba.Pixel{}},   // sponge
	{3, 1, styleBorder, rgba.Opaque(230, 240, 245), rgba.Pixel{}}, // glass
	{3, 4, styleSpeck, rgba.Opaque(60, 120, 40), rgba.Opaque(40, 90, 30)},       // leaves

	{4, 2, styleSolid, rgba.Opaque(240, 245, 250), rgba.Pixel{}},  // snow
	{4, 6, styleSolid, rgba.Opaque(96, 70, 48), rgba.Pixel{}},     // farmland

	{5, 0, styleCross, rgba.Opaque(255, 220, 120), rgba.Opaque(110, 90, 60)},    // torch
	{5, 3, styleCross, rgba.Opaque(160, 130, 80), rgba.Opaque(120, 96, 60)},     // ladder
	{5, 4, styleSolid, rgba.Opaque(170, 140, 90), rgba.Pixel{}},   // sign board

	{12, 13, styleFluid, rgba.Pixel{R: 40, G: 80, B: 200, A: 190}, rgba.Pixel{}}, // water
	{15, 13, styleSolid, rgba.Opaque(230, 120, 30), rgba.Pixel{}}, // lava
}

var pipeTiles = func() []tileSpec {
	specs := []tileSpec{
		{2, 0, styleSolid, rgba.Opaque(90, 110, 130), rgba.Pixel{}},  // tank
		{2, 1, styleSpeck, rgba.Opaque(120, 90, 60), rgba.Opaque(200, 60, 40)}, // engine
	}
	// Eight pipe strokes along row 1.
	hues := [8]rgba.Pixel{
		rgba.Opaque(157, 128, 79),  // wood
		rgba.Opaque(120, 120, 120), // cobble
		rgba.Opaque(168, 168, 168), // stone
		rgba.Opaque(220, 220, 220), // iron
		rgba.Opaque(250, 210, 80),  // gold
		rgba.Opaque(120, 220, 230), // diamond
		rgba.Opaque(40, 34, 60),    // obsidian
		rgba.Opaque(96, 160, 60),   // frame
	}
	for i, hue := range hues {
		specs = append(specs, tileSpec{1, i, styleCross, hue, rgba.Opaque(60, 60, 60)})
	}
	return specs
}()

func main() {
	if len(os.Args) < 2 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "Usage: texgen <out-dir> [tile-size] [seed]")
		os.Exit(1)
	}
	outDir := os.Args[1]

	tileSize := defaultTileSize
	if len(os.Args) > 2 {
		v, err := strconv.Atoi(os.Args[2])
		if err != nil || v < 2 {
			log.Fatalf("Bad tile size %q", os.Args[2])
		}
		tileSize = v
	}
	seed := int64(1)
	if len(os.Args) > 3 {
		v, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil {
			log.Fatalf("Bad seed %q", os.Args[3])
		}
		seed = v
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Create %s: %v", outDir, err)
	}

	for name, specs := range map[string][]tileSpec{
		"terrain": terrainTiles,
		"pipes":   pipeTiles,
	} {
		sheet := renderSheet(specs, tileSize, seed)
		path := filepath.Join(outDir, name+".png")
		if err := rgba.WritePNG(sheet, path); err != nil {
			log.Fatalf("Write %s: %v", path, err)
		}
		log.Printf("Wrote %s (%dx%d)", path, sheet.W, sheet.H)
	}
}

func renderSheet(specs []tileSpec, tileSize int, seed int64) *rgba.Image {
	sheet := rgba.New(16*tileSize, 16*tileSize)
	noise := newGrain(seed)

	for _, spec := range specs {
		ox, oy := spec.col*tileSize, spec.row*tileSize
		for y := 0; y < tileSize; y++ {
			for x := 0; x < tileSize; x++ {
				// Sample noise in sheet space so neighboring tiles
				// don't repeat.
				n := noise.at(float64(ox+x), float64(oy+y))
				sheet.Set(ox+x, oy+y, texel(spec, x, y, tileSize, n))
			}
		}
	}
	return sheet
}

// texel computes one pixel of a tile from its spec and a noise sample in
// [0, 1].
func texel(spec tileSpec, x, y, tileSize int, n float64) rgba.Pixel {
	shaded := func(p rgba.Pixel) rgba.Pixel {
		return rgba.Shade(p, 0.7+0.3*n)
	}

	switch spec.style {
	case styleSolid:
		return shaded(spec.base)
	case styleSpeck:
		if n > 0.62 {
			return shaded(spec.accent)
		}
		return shaded(spec.base)
	case styleBorder:
		if x == 0 || y == 0 || x == tileSize-1 || y == tileSize-1 {
			return spec.base
		}
		return rgba.Transparent
	case styleCross:
		// A vertical stem with a blob of the base color on top.
		mid := tileSize / 2
		if y < tileSize/2 && abs(x-mid) <= tileSize/6 && n > 0.3 {
			return shaded(spec.base)
		}
		if y >= tileSize/3 && abs(x-mid) <= 1 {
			return spec.accent
		}
		return rgba.Transparent
	default: // styleFluid
		return spec.base
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
