package atlas

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"isoatlas/internal/rgba"
)

// ErrStockMissing is returned when the mandatory terrain sheet cannot be
// read; without it the atlas would be all dummies.
var ErrStockMissing = errors.New("stock terrain sheet missing")

// ErrBadHalfSize is returned for a degenerate half-size parameter.
var ErrBadHalfSize = errors.New("half-size B must be >= 1")

// Sources holds the decoded source sheets for a build, keyed by catalog
// sheet name. A sheet must be square with an edge divisible by 16 (a
// 16 x 16 grid of square tiles).
type Sources struct {
	sheets map[string]*rgba.Image
}

// NewSources creates a Sources from already-decoded sheet images.
func NewSources(sheets map[string]*rgba.Image) *Sources {
	if sheets == nil {
		sheets = make(map[string]*rgba.Image)
	}
	return &Sources{sheets: sheets}
}

// LoadSources reads the known sheet PNGs from dir. Missing or unreadable
// mod sheets are skipped with a warning; a missing terrain sheet is only
// reported later, by Build, since a cached atlas can do without it.
func LoadSources(dir string) *Sources {
	s := NewSources(nil)
	for _, name := range []string{SheetTerrain, SheetPipes} {
		img, err := rgba.ReadPNG(filepath.Join(dir, name+".png"))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("Sheet %s not loaded: %v", name, err)
			}
			continue
		}
		if img.W%16 != 0 || img.H != img.W {
			log.Printf("Sheet %s has unusable dimensions %dx%d (want square, multiple of 16)", name, img.W, img.H)
			continue
		}
		s.sheets[name] = img
	}
	return s
}

// Sheet returns the named sheet image, or nil if it was not supplied.
func (s *Sources) Sheet(name string) *rgba.Image {
	return s.sheets[name]
}

// CachePath returns the location of the persisted atlas image for a
// given half-size, inside dir.
func CachePath(dir string, b int) string {
	return filepath.Join(dir, fmt.Sprintf("blocks-%d.png", b))
}

// Build constructs the atlas for half-size b. If cacheDir holds a
// previously persisted atlas of the right dimensions it is reused and no
// sheet pixels are touched; otherwise every catalog sprite is composited
// from srcs and the result is persisted back to cacheDir.
//
// Individual recipe failures (bad region, absent mod sheet) substitute
// the dummy sprite and are only counted; the single fatal condition is a
// missing terrain sheet when a full rebuild is needed.
func Build(b int, srcs *Sources, cacheDir string) (*Atlas, error) {
	if b < 1 {
		return nil, ErrBadHalfSize
	}

	a := &Atlas{B: b, offsets: buildOffsets()}
	rs := a.RectSize()
	wantW, wantH := SpritesPerRow*rs, Rows()*rs

	cachePath := CachePath(cacheDir, b)
	if img, err := rgba.ReadPNG(cachePath); err == nil {
		if img.W == wantW && img.H == wantH {
			a.Img = img
		} else {
			log.Printf("Cached atlas %s has stale dimensions %dx%d (want %dx%d); rebuilding",
				cachePath, img.W, img.H, wantW, wantH)
		}
	}

	if a.Img == nil {
		img, substituted, err := construct(b, srcs)
		if err != nil {
			return nil, err
		}
		a.Img = img
		a.Substituted = substituted

		if err := rgba.WritePNG(a.Img, cachePath); err != nil {
			log.Printf("Could not persist atlas: %v", err)
		}
	}

	snapAlphas(a.Img, b)
	a.opacity, a.transparency = classify(a.Img, b)
	return a, nil
}

// construct composites the full catalog into a fresh atlas image.
func construct(b int, srcs *Sources) (*rgba.Image, int, error) {
	terrain := srcs.Sheet(SheetTerrain)
	if terrain == nil {
		return nil, 0, ErrStockMissing
	}

	rs := 4 * b
	img := rgba.New(SpritesPerRow*rs, Rows()*rs)

	// Rescale each supplied sheet once, up front: a 16 x 16 grid of
	// 2B-sized tiles.
	tiles := make(map[string]*rgba.Image)
	for name, sheet := range srcs.sheets {
		tiles[name] = rescaleSheet(sheet, b)
	}

	substituted := 0
	missingSheets := make(map[string]int)
	for _, e := range Catalog() {
		t, ok := tiles[e.Sheet]
		if !ok {
			// Whole source set absent; its sprites stay dummies.
			missingSheets[e.Sheet]++
			substituted++
			continue
		}
		sprite, err := Compose(t, e.Recipe, b)
		if err != nil {
			log.Printf("Sprite %d (%s sheet): %v; using dummy", e.Offset, e.Sheet, err)
			substituted++
			continue
		}
		r := rgba.Rect{X: 0, Y: 0, W: rs, H: rs}
		dx := (e.Offset % SpritesPerRow) * rs
		dy := (e.Offset / SpritesPerRow) * rs
		rgba.Blit(sprite, r, img, dx, dy)
	}
	for name, n := range missingSheets {
		log.Printf("Sheet %s not supplied; %d sprites left as dummies", name, n)
	}
	return img, substituted, nil
}

// rescaleSheet resizes every tile of a source sheet to 2B x 2B.
func rescaleSheet(sheet *rgba.Image, b int) *rgba.Image {
	tileSize := sheet.W / 16
	newSize := 2 * b
	out := rgba.New(16*newSize, 16*newSize)
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			rgba.Rescale(sheet,
				rgba.Rect{X: col * tileSize, Y: row * tileSize, W: tileSize, H: tileSize},
				out,
				rgba.Rect{X: col * newSize, Y: row * newSize, W: newSize, H: newSize})
		}
	}
	return out
}
