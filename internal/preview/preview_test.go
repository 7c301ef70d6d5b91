package preview

import (
	"strconv"
	"strings"
	"testing"

	"isoatlas/internal/rgba"
)

func TestRenderShape(t *testing.T) {
	im := rgba.New(4, 4)
	im.Fill(im.Bounds(), rgba.Opaque(10, 20, 30))

	out := Render(im, im.Bounds())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2 (two pixel rows per line)", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▀"); got != 4 {
			t.Errorf("line %d has %d cells, want 4", i, got)
		}
		if !strings.HasSuffix(line, Reset) {
			t.Errorf("line %d does not end with a reset", i)
		}
	}
}

func TestRenderOpaqueColor(t *testing.T) {
	im := rgba.New(2, 2)
	im.Fill(im.Bounds(), rgba.Opaque(200, 100, 50))

	out := Render(im, im.Bounds())
	if !strings.Contains(out, "38;2;200;100;50") {
		t.Errorf("output lacks the foreground color sequence:\n%q", out)
	}
	if !strings.Contains(out, "48;2;200;100;50") {
		t.Errorf("output lacks the background color sequence:\n%q", out)
	}
}

func TestRenderTransparentShowsChecker(t *testing.T) {
	im := rgba.New(2, 2)

	out := Render(im, im.Bounds())
	shade := checkerShades[0]
	want := "38;2;" + strconv.Itoa(int(shade[0])) + ";" + strconv.Itoa(int(shade[1])) + ";" + strconv.Itoa(int(shade[2]))
	if !strings.Contains(out, want) {
		t.Errorf("output lacks checkerboard color %q:\n%q", want, out)
	}
}

func TestRenderOddHeight(t *testing.T) {
	im := rgba.New(2, 3)
	im.Fill(im.Bounds(), rgba.Opaque(1, 2, 3))

	out := Render(im, im.Bounds())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines for height 3, want 2", len(lines))
	}
}

func TestRenderClipsOutOfBounds(t *testing.T) {
	im := rgba.New(2, 2)
	im.Fill(im.Bounds(), rgba.Opaque(9, 9, 9))

	// A region hanging past the image must not panic; outside pixels read
	// as transparent.
	out := Render(im, rgba.Rect{X: 1, Y: 1, W: 4, H: 4})
	if out == "" {
		t.Fatal("empty render")
	}
}
