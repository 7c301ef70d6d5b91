package atlas

// Face identifies one of the three visible cube faces under the fixed
// isometric projection. The names are the legacy axis directions of the
// original asset set: N and W are the two side faces, U is the top.
type Face int

const (
	FaceN Face = iota
	FaceW
	FaceU
)

// Rotation of a source tile, in quarter turns counterclockwise.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// A sprite cell is 4B x 4B; the three faces tile the hexagon inscribed in
// it. Within the cell the N face parallelogram starts at (0, B), the W
// face at (2B, 2B), and the top diamond at (2B-1, 0).
func faceOrigin(f Face, b int) (x, y int) {
	switch f {
	case FaceN:
		return 0, b
	case FaceW:
		return 2 * b, 2 * b
	default:
		return 2*b - 1, 0
	}
}

// sideIter walks the destination pixels of a side-face parallelogram,
// column by column, top to bottom. Every second column the whole column
// shifts vertically by skew, giving the 1/2 pixel-per-column shear that
// makes neighboring faces meet without gaps or overdraw.
// skew is +1 for the N face and -1 for the W face.
type sideIter struct {
	X, Y, Pos int
	Done      bool
	size      int
	skew      int
}

func newSideIter(x, y, skew, size int) sideIter {
	return sideIter{X: x, Y: y, skew: skew, size: size}
}

func (it *sideIter) Advance() {
	it.Pos++
	if it.Pos >= it.size*it.size {
		it.Done = true
		return
	}
	it.Y++
	if it.Pos%it.size == 0 {
		it.X++
		it.Y -= it.size
		if it.Pos%(2*it.size) == it.size {
			it.Y += it.skew
		}
	}
}

// topIter walks the destination pixels of the top-face diamond, in the
// same column order as sideIter so the two can be advanced in lockstep
// with a source walk.
type topIter struct {
	X, Y, Pos int
	Done      bool
	size      int
}

func newTopIter(x, y, size int) topIter {
	return topIter{X: x, Y: y, size: size}
}

func (it *topIter) Advance() {
	size := it.size
	if (it.Pos/size)%2 == 0 {
		switch m := it.Pos % size; {
		case m == size-1:
			it.X += size - 1
			it.Y -= size / 2
		case m == size-2:
			it.Y++
		case m%2 == 0:
			it.X--
			it.Y++
		default:
			it.X--
		}
	} else {
		switch m := it.Pos % size; {
		case m == 0:
			it.Y++
		case m == size-1:
			it.X += size - 1
			it.Y -= size/2 - 1
		case m%2 == 0:
			it.X--
			it.Y++
		default:
			it.X--
		}
	}
	it.Pos++
	if it.Pos >= size*size {
		it.Done = true
	}
}

// srcIter walks a size x size source tile in column order, optionally
// rotated in quarter turns and/or flipped across the X axis. Advancing it
// in lockstep with a destination iterator maps each destination pixel to
// its source pixel.
type srcIter struct {
	X, Y, Pos int
	Done      bool
	size      int

	dx1, dy1 int // step within a column
	dx2, dy2 int // step between columns
}

func newSrcIter(x, y int, rot Rotation, size int, flipX bool) srcIter {
	it := srcIter{size: size}
	switch rot {
	case Rot0:
		it.X, it.Y = x, y
		it.dx1, it.dy1 = 0, 1
		it.dx2, it.dy2 = 1, 0
		if flipX {
			it.X = x + size - 1
			it.dx2 = -1
		}
	case Rot90:
		it.X, it.Y = x+size-1, y
		it.dx1, it.dy1 = -1, 0
		it.dx2, it.dy2 = 0, 1
		if flipX {
			it.X = x
			it.dx1 = 1
		}
	case Rot180:
		it.X, it.Y = x+size-1, y+size-1
		it.dx1, it.dy1 = 0, -1
		it.dx2, it.dy2 = -1, 0
		if flipX {
			it.X = x
			it.dx2 = 1
		}
	default: // Rot270
		it.X, it.Y = x, y+size-1
		it.dx1, it.dy1 = 1, 0
		it.dx2, it.dy2 = 0, -1
		if flipX {
			it.X = x + size - 1
			it.dx1 = -1
		}
	}
	return it
}

func (it *srcIter) Advance() {
	it.Pos++
	if it.Pos >= it.size*it.size {
		it.Done = true
		return
	}
	it.X += it.dx1
	it.Y += it.dy1
	if it.Pos%it.size == 0 {
		it.X += it.dx2
		it.Y += it.dy2
		it.X -= it.dx1 * it.size
		it.Y -= it.dy1 * it.size
	}
}

// hexMask returns a 4B x 4B grid marking every pixel of the hexagon, built
// by walking all three face iterators. Pixels outside the mask belong to
// the transparent corners of the sprite cell.
func hexMask(b int) []bool {
	size := 4 * b
	mask := make([]bool, size*size)
	mark := func(x, y int) {
		if x >= 0 && x < size && y >= 0 && y < size {
			mask[y*size+x] = true
		}
	}
	for _, f := range []Face{FaceN, FaceW, FaceU} {
		ox, oy := faceOrigin(f, b)
		switch f {
		case FaceN:
			for it := newSideIter(ox, oy, 1, 2*b); !it.Done; it.Advance() {
				mark(it.X, it.Y)
			}
		case FaceW:
			for it := newSideIter(ox, oy, -1, 2*b); !it.Done; it.Advance() {
				mark(it.X, it.Y)
			}
		case FaceU:
			for it := newTopIter(ox, oy, 2*b); !it.Done; it.Advance() {
				mark(it.X, it.Y)
			}
		}
	}
	return mask
}
