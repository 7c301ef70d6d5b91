package main

import (
	"math"
	"math/rand"
)

// grain produces the 2D simplex noise behind every synthesized texture.
// A fixed three-octave fractal is enough for tile-sized variation; the
// permutation table is shuffled from the seed so sheets are reproducible.
type grain struct {
	perm [512]int
}

func newGrain(seed int64) *grain {
	g := &grain{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		g.perm[i] = p[i&255]
	}
	return g
}

// at returns fractal noise for a sheet-space pixel, normalized to [0, 1].
func (g *grain) at(x, y float64) float64 {
	const (
		octaves     = 3
		baseFreq    = 0.35
		lacunarity  = 2.0
		persistence = 0.5
	)

	var total, maxAmp float64
	freq, amp := baseFreq, 1.0
	for i := 0; i < octaves; i++ {
		total += g.noise2D(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}
	return (total/maxAmp + 1.0) / 2.0
}

const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// noise2D returns raw 2D simplex noise in the range [-1, 1].
func (g *grain) noise2D(x, y float64) float64 {
	// Skew input space to determine which simplex cell we're in
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255

	// Contributions from the three corners.
	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(g.perm[ii+g.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(g.perm[ii+i1+g.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(g.perm[ii+1+g.perm[jj+1]], x2, y2)
	}

	// Scale to [-1, 1]
	return 70.0 * (n0 + n1 + n2)
}

// grad2 computes the dot product of a gradient vector and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
