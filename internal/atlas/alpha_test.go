package atlas

import (
	"testing"

	"isoatlas/internal/rgba"
)

// atlasCanvas returns a blank atlas-sized image for half-size b.
func atlasCanvas(b int) *rgba.Image {
	rs := 4 * b
	return rgba.New(SpritesPerRow*rs, Rows()*rs)
}

// hexPixel returns a coordinate inside sprite 0's hexagon and one in its
// transparent corner.
func hexPixel(b int) (inX, inY, outX, outY int) {
	x, y := faceOrigin(FaceU, b)
	return x, y, 0, 0
}

func TestSnapAlphas(t *testing.T) {
	b := 2
	inX, inY, outX, outY := hexPixel(b)

	cases := []struct {
		name  string
		in    rgba.Pixel
		want  uint8
		wantP *rgba.Pixel // non-nil to check the full pixel
	}{
		{name: "near transparent zeroed", in: rgba.Pixel{R: 50, G: 50, B: 50, A: 5}, wantP: &rgba.Pixel{}},
		{name: "threshold low kept", in: rgba.Pixel{R: 50, G: 50, B: 50, A: SnapLow}, want: SnapLow},
		{name: "midrange kept", in: rgba.Pixel{R: 50, G: 50, B: 50, A: 128}, want: 128},
		{name: "threshold high kept", in: rgba.Pixel{R: 50, G: 50, B: 50, A: SnapHigh}, want: SnapHigh},
		{name: "near opaque raised", in: rgba.Pixel{R: 50, G: 50, B: 50, A: 250}, want: 255},
		{name: "opaque kept", in: rgba.Pixel{R: 50, G: 50, B: 50, A: 255}, want: 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img := atlasCanvas(b)
			img.Set(inX, inY, c.in)
			snapAlphas(img, b)
			got := img.At(inX, inY)
			if c.wantP != nil {
				if got != *c.wantP {
					t.Errorf("pixel = %+v, want %+v", got, *c.wantP)
				}
			} else if got.A != c.want {
				t.Errorf("alpha = %d, want %d", got.A, c.want)
			}
		})
	}

	t.Run("outside hexagon forced transparent", func(t *testing.T) {
		img := atlasCanvas(b)
		img.Set(outX, outY, rgba.Opaque(200, 10, 10))
		snapAlphas(img, b)
		if got := img.At(outX, outY); got != rgba.Transparent {
			t.Errorf("corner pixel = %+v, want transparent", got)
		}
	})
}

func TestSnapAlphasIdempotent(t *testing.T) {
	b := 3
	img := atlasCanvas(b)
	// Scatter a few awkward alphas into sprite cells 0 and 1.
	rs := 4 * b
	alphas := []uint8{0, 3, SnapLow, 100, SnapHigh, 250, 255}
	for i, a := range alphas {
		img.Set(i%rs, (i*7)%rs, rgba.Pixel{R: 80, G: 80, B: 80, A: a})
		img.Set(rs+i%rs, (i*5)%rs, rgba.Pixel{R: 80, G: 80, B: 80, A: a})
	}

	snapAlphas(img, b)
	once := make([]rgba.Pixel, len(img.Pix))
	copy(once, img.Pix)

	snapAlphas(img, b)
	for i := range img.Pix {
		if img.Pix[i] != once[i] {
			t.Fatalf("pixel %d changed on second snap: %+v -> %+v", i, once[i], img.Pix[i])
		}
	}
}

func TestClassify(t *testing.T) {
	b := 2
	rs := 4 * b
	mask := hexMask(b)

	fillSprite := func(img *rgba.Image, offset int, p rgba.Pixel) {
		ox := (offset % SpritesPerRow) * rs
		oy := (offset / SpritesPerRow) * rs
		for y := 0; y < rs; y++ {
			for x := 0; x < rs; x++ {
				if mask[y*rs+x] {
					img.Set(ox+x, oy+y, p)
				}
			}
		}
	}

	img := atlasCanvas(b)
	fillSprite(img, 1, rgba.Opaque(100, 100, 100))          // opaque
	fillSprite(img, 2, rgba.Pixel{R: 100, A: 128})          // translucent
	fillSprite(img, 3, rgba.Opaque(100, 100, 100))          // one hole
	ux, uy := faceOrigin(FaceU, b)
	img.Set(3*rs+ux, uy, rgba.Transparent)

	opacity, transparency := classify(img, b)

	cases := []struct {
		name        string
		offset      int
		opaque      bool
		transparent bool
	}{
		{"untouched dummy", 0, false, true},
		{"solid", 1, true, false},
		{"uniform half alpha", 2, false, false},
		{"solid with hole", 3, false, false},
		{"unused slot", NumSprites - 1, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if opacity[c.offset] != c.opaque {
				t.Errorf("opacity[%d] = %v, want %v", c.offset, opacity[c.offset], c.opaque)
			}
			if transparency[c.offset] != c.transparent {
				t.Errorf("transparency[%d] = %v, want %v", c.offset, transparency[c.offset], c.transparent)
			}
		})
	}
}
