package main

import (
	"fmt"
	"os"
	"strconv"

	"isoatlas/internal/atlas"
	"isoatlas/internal/preview"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "build":
		if len(args) < 2 || len(args) > 3 {
			fmt.Fprintln(os.Stderr, "Usage: atlasgen build <assets-dir> <B> [cache-dir]")
			os.Exit(1)
		}
		os.Exit(runBuild(args))
	case "info":
		if len(args) < 2 || len(args) > 3 {
			fmt.Fprintln(os.Stderr, "Usage: atlasgen info <assets-dir> <B> [cache-dir]")
			os.Exit(1)
		}
		os.Exit(runInfo(args))
	case "viz":
		if len(args) < 4 || len(args) > 5 {
			fmt.Fprintln(os.Stderr, "Usage: atlasgen viz <assets-dir> <B> <block-type> <variant> [cache-dir]")
			os.Exit(1)
		}
		os.Exit(runViz(args))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: atlasgen <command> <args>

Commands:
  build <assets-dir> <B> [cache-dir]                    Build the atlas and persist blocks-B.png
  info  <assets-dir> <B> [cache-dir]                    Build and print classification summary
  viz   <assets-dir> <B> <block-type> <variant> [cache-dir]
                                                        Render one block's sprite as ANSI art

cache-dir defaults to assets-dir.`)
}

// buildAtlas parses the shared <assets-dir> <B> [cache-dir] arguments and
// runs a build.
func buildAtlas(args []string) (*atlas.Atlas, error) {
	dir := args[0]
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("bad half-size %q: %w", args[1], err)
	}
	cacheDir := dir
	if len(args) > 2 {
		cacheDir = args[2]
	}
	return atlas.Build(b, atlas.LoadSources(dir), cacheDir)
}

func runBuild(args []string) int {
	a, err := buildAtlas(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	fmt.Printf("Atlas built: %dx%d px, %d sprites (%d per row), cell %dx%d\n",
		a.Img.W, a.Img.H, atlas.NumSprites, atlas.SpritesPerRow, a.RectSize(), a.RectSize())
	if a.Substituted > 0 {
		fmt.Printf("Warning: %d catalog sprites substituted with the dummy\n", a.Substituted)
	}

	opaque, transparent := 0, 0
	for i := 0; i < atlas.NumSprites; i++ {
		if a.IsOpaque(i) {
			opaque++
		}
		if a.IsTransparent(i) {
			transparent++
		}
	}
	fmt.Printf("Sprites: %d opaque, %d transparent, %d translucent\n",
		opaque, transparent, atlas.NumSprites-opaque-transparent)
	return 0
}

func runInfo(args []string) int {
	a, err := buildAtlas(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	for i := 0; i < atlas.NumSprites; i++ {
		kind := "translucent"
		switch {
		case a.IsTransparent(i):
			kind = "transparent"
		case a.IsOpaque(i):
			kind = "opaque"
		}
		r := a.RectOf(i)
		fmt.Printf("%3d  (%4d,%4d)  %s\n", i, r.X, r.Y, kind)
	}
	return 0
}

func runViz(args []string) int {
	blockType, err := strconv.Atoi(args[2])
	if err != nil || blockType < 0 || blockType > 255 {
		fmt.Fprintf(os.Stderr, "Bad block type %q (want 0-255)\n", args[2])
		return 1
	}
	variant, err := strconv.Atoi(args[3])
	if err != nil || variant < 0 || variant > 15 {
		fmt.Fprintf(os.Stderr, "Bad variant %q (want 0-15)\n", args[3])
		return 1
	}

	rest := append(args[:2:2], args[4:]...)
	a, err := buildAtlas(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	offset := a.OffsetOf(uint8(blockType), uint8(variant))
	fmt.Print(preview.Render(a.Img, a.RectOf(offset)))
	fmt.Printf("block %d:%d -> sprite %d\n", blockType, variant, offset)
	return 0
}
