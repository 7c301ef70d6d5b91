package rgba

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ReadPNG loads a PNG file into an Image.
func ReadPNG(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	im := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			im.Set(x, y, fromColor(src.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return im, nil
}

// WritePNG saves the image as a PNG file.
func WritePNG(im *Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, im.NRGBA()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// NRGBA converts the image to a stdlib image.NRGBA.
func (im *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.W, im.H))
	for y := 0; y < im.H; y++ {
		for x := 0; x < im.W; x++ {
			p := im.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = p.R
			out.Pix[i+1] = p.G
			out.Pix[i+2] = p.B
			out.Pix[i+3] = p.A
		}
	}
	return out
}

// fromColor converts a stdlib color (premultiplied 16-bit) back to a
// non-premultiplied 8-bit pixel.
func fromColor(c color.Color) Pixel {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Pixel{}
	}
	return Pixel{
		R: uint8((r * 0xffff / a) >> 8),
		G: uint8((g * 0xffff / a) >> 8),
		B: uint8((b * 0xffff / a) >> 8),
		A: uint8(a >> 8),
	}
}

// Rescale scales the sr region of src into the dr region of dst.
// Integer upscales use nearest-neighbor so pixel-art tiles keep hard
// edges; everything else goes through a bilinear kernel.
func Rescale(src *Image, sr Rect, dst *Image, dr Rect) {
	srcN := src.Sub(sr).NRGBA()
	dstN := image.NewNRGBA(image.Rect(0, 0, dr.W, dr.H))

	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if sr.W > 0 && sr.H > 0 && dr.W%sr.W == 0 && dr.H%sr.H == 0 {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dstN, dstN.Bounds(), srcN, srcN.Bounds(), xdraw.Src, nil)

	for y := 0; y < dr.H; y++ {
		for x := 0; x < dr.W; x++ {
			tx, ty := dr.X+x, dr.Y+y
			if tx < 0 || tx >= dst.W || ty < 0 || ty >= dst.H {
				continue
			}
			i := dstN.PixOffset(x, y)
			dst.Set(tx, ty, Pixel{
				R: dstN.Pix[i+0],
				G: dstN.Pix[i+1],
				B: dstN.Pix[i+2],
				A: dstN.Pix[i+3],
			})
		}
	}
}
