package atlas

import "isoatlas/internal/rgba"

// Atlas is the finished sprite sheet: every catalog sprite laid out in
// rows of 16, the (blockType, variant) lookup table, and the per-sprite
// opacity/transparency flags. It is immutable after Build returns.
type Atlas struct {
	// Img holds all sprites, row-major, 16 per row.
	Img *rgba.Image

	// B is the half-size parameter the atlas was built with; each
	// sprite occupies a 4B x 4B cell.
	B int

	// Substituted counts catalog recipes that could not be composited
	// and fell back to the dummy sprite. Diagnostics only.
	Substituted int

	offsets      []uint16
	opacity      []bool
	transparency []bool
}

// RectSize is the edge length of one sprite cell.
func (a *Atlas) RectSize() int {
	return 4 * a.B
}

// OffsetOf returns the sprite offset for a block type and variant.
// Unrecognized pairs return 0, the transparent dummy sprite.
//
// Some blocks (fences, double chests) look different depending on their
// neighbors; for those the table holds a context-free default and the
// renderer substitutes the proper offset using context it alone has.
func (a *Atlas) OffsetOf(blockType, variant uint8) int {
	return int(a.offsets[int(blockType)*NumVariants+int(variant&0x0f)])
}

// RectOf returns the bounding rectangle of a sprite within Img.
func (a *Atlas) RectOf(offset int) rgba.Rect {
	rs := a.RectSize()
	return rgba.Rect{X: (offset % SpritesPerRow) * rs, Y: (offset / SpritesPerRow) * rs, W: rs, H: rs}
}

// IsOpaque reports whether every hexagon pixel of the sprite has full
// alpha. Opaque sprites can never reveal what is behind them.
func (a *Atlas) IsOpaque(offset int) bool {
	return a.opacity[offset]
}

// IsTransparent reports whether every pixel of the sprite has zero
// alpha. The dummy sprite and all unused slots are transparent.
func (a *Atlas) IsTransparent(offset int) bool {
	return a.transparency[offset]
}

// BlockIsOpaque is IsOpaque looked up through the block table.
func (a *Atlas) BlockIsOpaque(blockType, variant uint8) bool {
	return a.opacity[a.OffsetOf(blockType, variant)]
}

// BlockIsTransparent is IsTransparent looked up through the block table.
func (a *Atlas) BlockIsTransparent(blockType, variant uint8) bool {
	return a.transparency[a.OffsetOf(blockType, variant)]
}

// Rows returns the number of sprite rows in the atlas grid.
func Rows() int {
	return (NumSprites + SpritesPerRow - 1) / SpritesPerRow
}
