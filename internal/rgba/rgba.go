package rgba

// Pixel is a single non-premultiplied RGBA pixel.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent pixel.
var Transparent = Pixel{}

// Opaque is a shorthand to create a fully opaque pixel.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// In reports whether r lies entirely inside outer.
func (r Rect) In(outer Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.X+r.W <= outer.X+outer.W && r.Y+r.H <= outer.Y+outer.H
}

// Overlaps reports whether r and other share any pixel.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Image is a W x H grid of RGBA pixels stored row-major.
type Image struct {
	W, H int
	Pix  []Pixel
}

// New creates a fully transparent image of the given size.
func New(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]Pixel, w*h)}
}

// Bounds returns the image's full rectangle.
func (im *Image) Bounds() Rect {
	return Rect{0, 0, im.W, im.H}
}

// At returns the pixel at (x, y). The caller must stay in bounds.
func (im *Image) At(x, y int) Pixel {
	return im.Pix[y*im.W+x]
}

// Set stores the pixel at (x, y). The caller must stay in bounds.
func (im *Image) Set(x, y int, p Pixel) {
	im.Pix[y*im.W+x] = p
}

// Fill sets every pixel of the rectangle to p. Out-of-bounds parts are skipped.
func (im *Image) Fill(r Rect, p Pixel) {
	for y := max(r.Y, 0); y < min(r.Y+r.H, im.H); y++ {
		row := im.Pix[y*im.W : y*im.W+im.W]
		for x := max(r.X, 0); x < min(r.X+r.W, im.W); x++ {
			row[x] = p
		}
	}
}

// Sub returns a copy of the given region as a new image.
func (im *Image) Sub(r Rect) *Image {
	out := New(r.W, r.H)
	Blit(im, r, out, 0, 0)
	return out
}

// Blit copies the sr region of src over the dst region at (dx, dy),
// replacing destination pixels (no blending). Rows and columns falling
// outside either image are skipped.
func Blit(src *Image, sr Rect, dst *Image, dx, dy int) {
	for y := 0; y < sr.H; y++ {
		sy := sr.Y + y
		ty := dy + y
		if sy < 0 || sy >= src.H || ty < 0 || ty >= dst.H {
			continue
		}
		for x := 0; x < sr.W; x++ {
			sx := sr.X + x
			tx := dx + x
			if sx < 0 || sx >= src.W || tx < 0 || tx >= dst.W {
				continue
			}
			dst.Pix[ty*dst.W+tx] = src.Pix[sy*src.W+sx]
		}
	}
}

// Paste alpha-blends the sr region of src onto dst at (dx, dy).
func Paste(src *Image, sr Rect, dst *Image, dx, dy int) {
	for y := 0; y < sr.H; y++ {
		sy := sr.Y + y
		ty := dy + y
		if sy < 0 || sy >= src.H || ty < 0 || ty >= dst.H {
			continue
		}
		for x := 0; x < sr.W; x++ {
			sx := sr.X + x
			tx := dx + x
			if sx < 0 || sx >= src.W || tx < 0 || tx >= dst.W {
				continue
			}
			idx := ty*dst.W + tx
			dst.Pix[idx] = Blend(dst.Pix[idx], src.Pix[sy*src.W+sx])
		}
	}
}

// Blend composites src over dst with standard non-premultiplied alpha-over
// and returns the result.
func Blend(dst, src Pixel) Pixel {
	if src.A == 255 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := uint32(src.A)
	da := uint32(dst.A) * (255 - sa) / 255
	oa := sa + da
	if oa == 0 {
		return Pixel{}
	}
	blendCh := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*da) / oa)
	}
	return Pixel{
		R: blendCh(src.R, dst.R),
		G: blendCh(src.G, dst.G),
		B: blendCh(src.B, dst.B),
		A: uint8(oa),
	}
}

// Shade multiplies the color channels of p by f in [0, 1], leaving alpha
// untouched. Used to darken the side faces of a block.
func Shade(p Pixel, f float64) Pixel {
	p.R = uint8(float64(p.R) * f)
	p.G = uint8(float64(p.G) * f)
	p.B = uint8(float64(p.B) * f)
	return p
}
