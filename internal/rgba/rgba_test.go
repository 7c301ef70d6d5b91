package rgba

import "testing"

func TestBlend(t *testing.T) {
	cases := []struct {
		name     string
		dst, src Pixel
		want     Pixel
	}{
		{"opaque src replaces", Pixel{R: 1, G: 2, B: 3, A: 255}, Opaque(9, 8, 7), Opaque(9, 8, 7)},
		{"transparent src keeps dst", Pixel{R: 1, G: 2, B: 3, A: 200}, Transparent, Pixel{R: 1, G: 2, B: 3, A: 200}},
		{"both transparent", Transparent, Transparent, Transparent},
		{"half over transparent keeps src color", Transparent, Pixel{R: 100, G: 50, B: 20, A: 128}, Pixel{R: 100, G: 50, B: 20, A: 128}},
		{"half over opaque mixes", Opaque(0, 0, 0), Pixel{R: 255, G: 255, B: 255, A: 128}, Pixel{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Blend(c.dst, c.src); got != c.want {
				t.Errorf("Blend(%+v, %+v) = %+v, want %+v", c.dst, c.src, got, c.want)
			}
		})
	}
}

func TestBlendAlphaAccumulates(t *testing.T) {
	// Two half-transparent layers end up more opaque than either.
	p := Blend(Pixel{R: 10, G: 10, B: 10, A: 128}, Pixel{R: 10, G: 10, B: 10, A: 128})
	if p.A <= 128 {
		t.Errorf("stacked alpha = %d, want > 128", p.A)
	}
	if p.A == 255 {
		t.Errorf("stacked alpha = 255, want < 255")
	}
}

func TestShade(t *testing.T) {
	p := Shade(Pixel{R: 100, G: 200, B: 50, A: 130}, 0.5)
	want := Pixel{R: 50, G: 100, B: 25, A: 130}
	if p != want {
		t.Errorf("Shade = %+v, want %+v", p, want)
	}
	if full := Shade(Opaque(33, 44, 55), 1); full != Opaque(33, 44, 55) {
		t.Errorf("Shade by 1 changed pixel: %+v", full)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("Contains rejects corner pixels")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("Contains accepts pixels past the far edge")
	}
	if !r.In(Rect{0, 0, 10, 10}) {
		t.Error("In rejects an enclosing rect")
	}
	if r.In(Rect{0, 0, 5, 10}) {
		t.Error("In accepts a rect it spills out of")
	}
	if !r.Overlaps(Rect{5, 7, 3, 3}) {
		t.Error("Overlaps rejects a touching-corner overlap")
	}
	if r.Overlaps(Rect{6, 3, 2, 2}) {
		t.Error("Overlaps accepts an adjacent rect")
	}
}

func TestFillClips(t *testing.T) {
	im := New(4, 4)
	im.Fill(Rect{X: -2, Y: -2, W: 4, H: 4}, Opaque(9, 9, 9))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Transparent
			if x < 2 && y < 2 {
				want = Opaque(9, 9, 9)
			}
			if got := im.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestBlitAndPaste(t *testing.T) {
	src := New(2, 2)
	src.Fill(src.Bounds(), Pixel{R: 200, G: 0, B: 0, A: 128})

	dst := New(4, 4)
	dst.Fill(dst.Bounds(), Opaque(0, 0, 200))

	// Blit replaces, clipping the out-of-bounds row and column.
	Blit(src, src.Bounds(), dst, 3, 3)
	if got := dst.At(3, 3); got != src.At(0, 0) {
		t.Errorf("Blit pixel = %+v, want %+v", got, src.At(0, 0))
	}
	if got := dst.At(2, 2); got != Opaque(0, 0, 200) {
		t.Errorf("Blit touched pixel outside target: %+v", got)
	}

	// Paste blends.
	Paste(src, src.Bounds(), dst, 0, 0)
	want := Blend(Opaque(0, 0, 200), src.At(0, 0))
	if got := dst.At(0, 0); got != want {
		t.Errorf("Paste pixel = %+v, want %+v", got, want)
	}
}

func TestSub(t *testing.T) {
	im := New(4, 4)
	im.Set(2, 1, Opaque(7, 7, 7))
	sub := im.Sub(Rect{X: 1, Y: 1, W: 2, H: 2})
	if sub.W != 2 || sub.H != 2 {
		t.Fatalf("Sub is %dx%d, want 2x2", sub.W, sub.H)
	}
	if got := sub.At(1, 0); got != Opaque(7, 7, 7) {
		t.Errorf("Sub pixel = %+v, want the copied pixel", got)
	}
	// The copy is independent of the source.
	sub.Set(0, 0, Opaque(1, 1, 1))
	if im.At(1, 1) != Transparent {
		t.Error("writing the Sub copy modified the source")
	}
}
