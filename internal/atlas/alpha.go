package atlas

import "isoatlas/internal/rgba"

// Alpha snap thresholds. Pixels this close to fully transparent or fully
// opaque are pushed all the way, so authoring noise (a sheet accidentally
// exported at 99% opacity) cannot force every sprite down the expensive
// translucent rendering path. Empirical values from the original assets.
const (
	SnapLow  = 10
	SnapHigh = 245
)

// snapAlphas normalizes every sprite cell of the atlas image in place:
// hexagon pixels get their alpha snapped, everything outside the hexagon
// is forced fully transparent no matter what the source contained.
func snapAlphas(img *rgba.Image, b int) {
	mask := hexMask(b)
	rs := 4 * b
	for offset := 0; offset < NumSprites; offset++ {
		ox := (offset % SpritesPerRow) * rs
		oy := (offset / SpritesPerRow) * rs
		for y := 0; y < rs; y++ {
			for x := 0; x < rs; x++ {
				p := img.At(ox+x, oy+y)
				if !mask[y*rs+x] {
					if p.A != 0 {
						img.Set(ox+x, oy+y, rgba.Transparent)
					}
					continue
				}
				if p.A < SnapLow && p.A > 0 {
					img.Set(ox+x, oy+y, rgba.Pixel{})
				} else if p.A > SnapHigh && p.A < 255 {
					p.A = 255
					img.Set(ox+x, oy+y, p)
				}
			}
		}
	}
}

// classify scans the hexagon pixels of every sprite after snapping and
// returns the opacity and transparency flag arrays. A sprite is opaque
// iff all hexagon pixels have alpha 255, transparent iff all have alpha
// 0; anything in between is translucent (neither flag set).
func classify(img *rgba.Image, b int) (opacity, transparency []bool) {
	mask := hexMask(b)
	rs := 4 * b
	opacity = make([]bool, NumSprites)
	transparency = make([]bool, NumSprites)

	for offset := 0; offset < NumSprites; offset++ {
		ox := (offset % SpritesPerRow) * rs
		oy := (offset / SpritesPerRow) * rs
		opaque, transparent := true, true
		for y := 0; y < rs && (opaque || transparent); y++ {
			for x := 0; x < rs; x++ {
				if !mask[y*rs+x] {
					continue
				}
				a := img.At(ox+x, oy+y).A
				if a < 255 {
					opaque = false
				}
				if a > 0 {
					transparent = false
				}
				if !opaque && !transparent {
					break
				}
			}
		}
		opacity[offset] = opaque
		transparency[offset] = transparent
	}
	return opacity, transparency
}
