// Package preview renders atlas pixels as ANSI half-block art, two
// pixels per terminal cell, for quick inspection without an image viewer.
package preview

import (
	"strconv"
	"strings"

	"isoatlas/internal/rgba"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return CSI + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// Checkerboard shades used behind transparent pixels, so translucency is
// visible in the preview.
var checkerShades = [2][3]uint8{
	{44, 44, 52},
	{62, 62, 72},
}

// Render draws the r region of im as half-block text: each output cell
// shows two vertically stacked pixels ('▀' with the top pixel as
// foreground and the bottom as background). Transparent pixels show a
// checkerboard. Every line ends with an SGR reset and newline.
func Render(im *rgba.Image, r rgba.Rect) string {
	var sb strings.Builder
	sb.Grow(r.W * r.H * 12)

	for y := 0; y < r.H; y += 2 {
		for x := 0; x < r.W; x++ {
			top := sample(im, r.X+x, r.Y+y)
			bot := rgba.Pixel{}
			if y+1 < r.H {
				bot = sample(im, r.X+x, r.Y+y+1)
			}
			tr, tg, tb := flatten(top, x, y)
			br, bg, bb := flatten(bot, x, y+1)

			sb.WriteString("\x1b[0;38;2;")
			sb.WriteString(strconv.Itoa(int(tr)))
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(int(tg)))
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(int(tb)))
			sb.WriteString(";48;2;")
			sb.WriteString(strconv.Itoa(int(br)))
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(int(bg)))
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(int(bb)))
			sb.WriteByte('m')
			sb.WriteRune('▀')
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sample(im *rgba.Image, x, y int) rgba.Pixel {
	if x < 0 || x >= im.W || y < 0 || y >= im.H {
		return rgba.Pixel{}
	}
	return im.At(x, y)
}

// flatten composites a pixel over the checkerboard backdrop for display.
func flatten(p rgba.Pixel, x, y int) (r, g, b uint8) {
	shade := checkerShades[((x/4)+(y/4))%2]
	if p.A == 255 {
		return p.R, p.G, p.B
	}
	bg := rgba.Pixel{R: shade[0], G: shade[1], B: shade[2], A: 255}
	out := rgba.Blend(bg, p)
	return out.R, out.G, out.B
}
