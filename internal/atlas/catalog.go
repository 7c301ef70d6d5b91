package atlas

// The catalog is the fixed enumeration of every sprite the builder may
// produce. Offsets are stable; slots not listed below are reserved and
// stay dummy sprites.
//
//	0 dummy (transparent)    16 lava              32 red mushroom     48 snow cover
//	1 stone                  17 lava level 3      33 gold block       49 farmland
//	2 grass                  18 lava level 2      34 iron block       50-65 wool colors
//	3 dirt                   19 lava level 1      35 UNUSED
//	4 cobblestone            20 sand              36 double slab
//	5 planks                 21 gravel            37 stone slab
//	6 sapling                22 gold ore          38 brick
//	7 bedrock                23 iron ore          39 TNT
//	8 water full/falling     24 coal ore          40 bookshelf
//	9-15 water levels 7-1    25 log               41 mossy cobblestone
//	                         26 leaves            42 obsidian
//	                         27 sponge            43 torch
//	                         28 glass             44 ladder E side
//	                         29 diamond ore       45 ladder W side
//	                         30 yellow flower     46 wall sign S
//	                         31 brown mushroom    47 snow block
//
//	66-79 reserved
//
// Pipes mod sheet:
//
//	80-87 pipes (wood, cobble, stone, iron, gold, diamond, obsidian, frame)
//	88 tank                  89 engine            90-95 reserved
const NumSprites = 96

// SpritesPerRow is the fixed atlas grid width, in sprites.
const SpritesPerRow = 16

// Lookup table dimensions: one slot per (blockType, variant) pair.
const (
	NumBlockTypes = 256
	NumVariants   = 16
	TableSize     = NumBlockTypes * NumVariants
)

// Sheet names of the catalog's texture sources. Terrain is mandatory;
// everything else is an optional mod sheet.
const (
	SheetTerrain = "terrain"
	SheetPipes   = "pipes"
)

// Tile coordinates within the terrain sheet's 16 x 16 grid.
var (
	tGrassTop  = Tile{0, 0}
	tStone     = Tile{0, 1}
	tDirt      = Tile{0, 2}
	tGrassSide = Tile{0, 3}
	tPlanks    = Tile{0, 4}
	tSlabSide  = Tile{0, 5}
	tSlabTop   = Tile{0, 6}
	tBrick     = Tile{0, 7}
	tTNTSide   = Tile{0, 8}
	tTNTTop    = Tile{0, 9}
	tFlower    = Tile{0, 13}
	tSapling   = Tile{0, 15}

	tCobble    = Tile{1, 0}
	tBedrock   = Tile{1, 1}
	tSand      = Tile{1, 2}
	tGravel    = Tile{1, 3}
	tLogSide   = Tile{1, 4}
	tLogTop    = Tile{1, 5}
	tIronBlock = Tile{1, 6}
	tGoldBlock = Tile{1, 7}
	tMushBrown = Tile{1, 12}
	tMushRed   = Tile{1, 13}

	tGoldOre    = Tile{2, 0}
	tIronOre    = Tile{2, 1}
	tCoalOre    = Tile{2, 2}
	tDiamondOre = Tile{2, 3}
	tMossy      = Tile{2, 4}
	tObsidian   = Tile{2, 5}

	tSponge   = Tile{3, 0}
	tGlass    = Tile{3, 1}
	tLeaves   = Tile{3, 4}
	tSnow     = Tile{4, 2}
	tFarmland = Tile{4, 6}
	tTorch    = Tile{5, 0}
	tLadder   = Tile{5, 3}
	tSign     = Tile{5, 4}
	tWater    = Tile{12, 13}
	tLava     = Tile{15, 13}
	// Wool colors occupy all of row 8.
	woolRow = 8
)

// Tile coordinates within the pipes mod sheet.
var (
	pTank   = Tile{2, 0}
	pEngine = Tile{2, 1}
)

// Entry binds one catalog offset to its source sheet and recipe.
type Entry struct {
	Offset int
	Sheet  string
	Recipe Recipe
}

// Catalog returns the full fixed sprite catalog. Offset 0 (the dummy) has
// no entry; it stays transparent.
func Catalog() []Entry {
	entries := []Entry{
		{1, SheetTerrain, UniformCube(tStone)},
		{2, SheetTerrain, Cube(tGrassSide, tGrassSide, tGrassTop)},
		{3, SheetTerrain, UniformCube(tDirt)},
		{4, SheetTerrain, UniformCube(tCobble)},
		{5, SheetTerrain, UniformCube(tPlanks)},
		{6, SheetTerrain, cross(tSapling)},
		{7, SheetTerrain, UniformCube(tBedrock)},
		{8, SheetTerrain, UniformCube(tWater)},
		{16, SheetTerrain, UniformCube(tLava)},
		{20, SheetTerrain, UniformCube(tSand)},
		{21, SheetTerrain, UniformCube(tGravel)},
		{22, SheetTerrain, UniformCube(tGoldOre)},
		{23, SheetTerrain, UniformCube(tIronOre)},
		{24, SheetTerrain, UniformCube(tCoalOre)},
		{25, SheetTerrain, Cube(tLogSide, tLogSide, tLogTop)},
		{26, SheetTerrain, UniformCube(tLeaves)},
		{27, SheetTerrain, UniformCube(tSponge)},
		{28, SheetTerrain, UniformCube(tGlass)},
		{29, SheetTerrain, UniformCube(tDiamondOre)},
		{30, SheetTerrain, cross(tFlower)},
		{31, SheetTerrain, cross(tMushBrown)},
		{32, SheetTerrain, cross(tMushRed)},
		{33, SheetTerrain, UniformCube(tGoldBlock)},
		{34, SheetTerrain, UniformCube(tIronBlock)},
		{36, SheetTerrain, Cube(tSlabSide, tSlabSide, tSlabTop)},
		{37, SheetTerrain, halfSlab(tSlabSide, tSlabTop)},
		{38, SheetTerrain, UniformCube(tBrick)},
		{39, SheetTerrain, Cube(tTNTSide, tTNTSide, tTNTTop)},
		{40, SheetTerrain, Cube(tBrick, tBrick, tPlanks)}, // bookshelf: brick placeholder sides in the synthetic sheet
		{41, SheetTerrain, UniformCube(tMossy)},
		{42, SheetTerrain, UniformCube(tObsidian)},
		{43, SheetTerrain, cross(tTorch)},
		{44, SheetTerrain, billboard(tLadder, SurfBillE)},
		{45, SheetTerrain, billboard(tLadder, SurfBillW)},
		{46, SheetTerrain, billboard(tSign, SurfBillS)},
		{47, SheetTerrain, UniformCube(tSnow)},
		{48, SheetTerrain, snowCover(tSnow)},
		{49, SheetTerrain, farmland(tFarmland, tDirt)},
	}

	// Water levels 7 down to 1: progressively lower fluid surface.
	for level := 7; level >= 1; level-- {
		entries = append(entries, Entry{
			Offset: 8 + (8 - level),
			Sheet:  SheetTerrain,
			Recipe: fluidLevel(tWater, 2*(8-level)),
		})
	}
	// Lava levels 3 down to 1.
	for level := 3; level >= 1; level-- {
		entries = append(entries, Entry{
			Offset: 16 + (4 - level),
			Sheet:  SheetTerrain,
			Recipe: fluidLevel(tLava, 4*(4-level)),
		})
	}
	// The 16 wool colors, one tile per color along the wool row.
	for color := 0; color < 16; color++ {
		entries = append(entries, Entry{
			Offset: 50 + color,
			Sheet:  SheetTerrain,
			Recipe: UniformCube(Tile{woolRow, color}),
		})
	}
	// Pipes mod: eight crossed-flat pipes plus two machine cubes.
	for i := 0; i < 8; i++ {
		entries = append(entries, Entry{
			Offset: 80 + i,
			Sheet:  SheetPipes,
			Recipe: cross(Tile{1, i}),
		})
	}
	entries = append(entries,
		Entry{88, SheetPipes, UniformCube(pTank)},
		Entry{89, SheetPipes, UniformCube(pEngine)},
	)
	return entries
}

func cross(t Tile) Recipe {
	return Recipe{Layers: []Layer{{Tile: t, Surf: SurfCross}}}
}

func billboard(t Tile, s Surface) Recipe {
	return Recipe{Layers: []Layer{{Tile: t, Surf: s}}}
}

// halfSlab is the bottom half of a block: side faces cut to half height,
// top face lowered accordingly.
func halfSlab(side, top Tile) Recipe {
	return Recipe{Layers: []Layer{
		{Tile: side, Surf: SurfN, TopCut: 8, Shift: true},
		{Tile: side, Surf: SurfW, TopCut: 8, Shift: true},
		{Tile: top, Surf: SurfU, TopCut: 8},
	}}
}

// fluidLevel is a full-width block with its top surface lowered by
// cut16 16ths.
func fluidLevel(t Tile, cut16 int) Recipe {
	return Recipe{Layers: []Layer{
		{Tile: t, Surf: SurfN, TopCut: cut16, Shift: true},
		{Tile: t, Surf: SurfW, TopCut: cut16, Shift: true},
		{Tile: t, Surf: SurfU, TopCut: cut16},
	}}
}

// snowCover is the thin snow layer lying on top of a block.
func snowCover(t Tile) Recipe {
	return Recipe{Layers: []Layer{
		{Tile: t, Surf: SurfN, TopCut: 14, Shift: true},
		{Tile: t, Surf: SurfW, TopCut: 14, Shift: true},
		{Tile: t, Surf: SurfU, TopCut: 14},
	}}
}

// farmland is a dirt block with a tilled top, one pixel lower than full.
func farmland(top, side Tile) Recipe {
	return Recipe{Layers: []Layer{
		{Tile: side, Surf: SurfN, TopCut: 1, Shift: true},
		{Tile: side, Surf: SurfW, TopCut: 1, Shift: true},
		{Tile: top, Surf: SurfU, TopCut: 1},
	}}
}

// Block type ids recognized by the lookup table.
//
//	0 air          8,9 water        17 log          41 gold block   50 torch
//	1 stone        10,11 lava       18 leaves       42 iron block   56 diamond ore
//	2 grass        12 sand          19 sponge       43 double slab  60 farmland
//	3 dirt         13 gravel        20 glass        44 slab         65 ladder
//	4 cobble       14 gold ore      35 wool         45 brick        68 wall sign
//	5 planks       15 iron ore      37 flower       46 TNT          78 snow cover
//	6 sapling      16 coal ore      38 rose         47 bookshelf    80 snow block
//	7 bedrock                       39,40 mushrooms 48 mossy        85 fence
//	                                                49 obsidian
//
// Fences (85) render differently depending on neighboring blocks; the
// table stores the plain post-less default and the renderer overrides it
// with context this table cannot hold.
func buildOffsets() []uint16 {
	offsets := make([]uint16, TableSize)

	fill := func(blockType int, offset uint16) {
		for v := 0; v < NumVariants; v++ {
			offsets[blockType*NumVariants+v] = offset
		}
	}
	set := func(blockType, variant int, offset uint16) {
		offsets[blockType*NumVariants+variant] = offset
	}

	fill(1, 1)
	fill(2, 2)
	fill(3, 3)
	fill(4, 4)
	fill(5, 5)
	fill(6, 6)
	fill(7, 7)
	// Water and lava: variant is the fluid level; the falling-fluid
	// variants (bit 3 set) stay full.
	for _, id := range []int{8, 9} {
		fill(id, 8)
		for level := 1; level <= 7; level++ {
			set(id, level, uint16(8+level))
		}
	}
	for _, id := range []int{10, 11} {
		fill(id, 16)
		set(id, 2, 17)
		set(id, 4, 18)
		set(id, 6, 19)
	}
	fill(12, 20)
	fill(13, 21)
	fill(14, 22)
	fill(15, 23)
	fill(16, 24)
	fill(17, 25)
	fill(18, 26)
	fill(19, 27)
	fill(20, 28)
	// Wool: variant is the color.
	for color := 0; color < 16; color++ {
		set(35, color, uint16(50+color))
	}
	fill(37, 30)
	fill(38, 30)
	fill(39, 31)
	fill(40, 32)
	fill(41, 33)
	fill(42, 34)
	fill(43, 36)
	fill(44, 37)
	fill(45, 38)
	fill(46, 39)
	fill(47, 40)
	fill(48, 41)
	fill(49, 42)
	fill(50, 43)
	fill(56, 29)
	fill(60, 49)
	// Ladder: variant 2/4 face E, 3/5 face W.
	fill(65, 44)
	set(65, 3, 45)
	set(65, 5, 45)
	fill(68, 46)
	fill(78, 48)
	fill(80, 47)
	// Fence default; see note above.
	fill(85, 5)

	// Pipes mod.
	for i := 0; i < 8; i++ {
		fill(200+i, uint16(80+i))
	}
	fill(208, 88)
	fill(209, 89)

	return offsets
}
