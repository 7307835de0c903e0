package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/post"
	"github.com/theRealZauberwuerfel/blackstar/pkg/renderer"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
	"github.com/theRealZauberwuerfel/blackstar/pkg/starfield"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a JSON scene file (empty = built-in default scene)")
	catalogPath := flag.String("catalog", "", "Path to a binary star catalog (empty = built-in bright stars)")
	indexPath := flag.String("index", "", "Path to a persisted star index (takes precedence over -catalog)")
	outputDir := flag.String("out", "output", "Output directory for rendered frames")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	firstFrame := flag.Int("first", 0, "First frame of the sequence to render")
	lastFrame := flag.Int("last", -1, "Last frame of the sequence to render (-1 = end)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("blackstar - black hole renderer")
		fmt.Println("Usage: blackstar [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("A scene file without keyframes renders a single frame;")
		fmt.Println("with keyframes it renders the full animated sequence.")
		fmt.Println("Frames are saved to <out>/frame_NNNN.png")
		return
	}

	logger := core.NewDefaultLogger()

	sf, err := loadSceneFile(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	index, err := loadStarIndex(*indexPath, *catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading star index: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Star index ready: %d stars\n", index.Len())

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	frames := sf.Sequence()
	first, last := frameWindow(len(frames), *firstFrame, *lastFrame)
	logger.Printf("Rendering frames %d..%d of %d...\n", first, last, len(frames))

	failures := 0
	for n := first; n <= last; n++ {
		frameScene := frames[n]
		if err := renderFrame(&frameScene, index, *workers, *outputDir, n, logger); err != nil {
			// One bad frame does not cancel the rest of the sequence.
			fmt.Fprintf(os.Stderr, "Error rendering frame %d: %v\n", n, err)
			failures++
		}
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d frames failed\n", failures, last-first+1)
		os.Exit(1)
	}
}

// frameWindow clamps a requested [first, last] frame range to the sequence.
// A negative last means the end of the sequence.
func frameWindow(total, first, last int) (int, int) {
	if first < 0 {
		first = 0
	}
	if last < 0 || last >= total {
		last = total - 1
	}
	if first > last {
		first = last
	}
	return first, last
}

// loadSceneFile reads the scene config, or falls back to the built-in
// default scene when no path is given.
func loadSceneFile(path string) (*scene.File, error) {
	if path == "" {
		def := scene.Default()
		return &scene.File{Scene: def}, nil
	}
	return scene.Load(path)
}

// loadStarIndex resolves the star index input: a persisted index file, a
// binary catalog, or the built-in bright-star catalog, in that order.
func loadStarIndex(indexPath, catalogPath string) (*starfield.Index, error) {
	if indexPath != "" {
		return starfield.LoadIndex(indexPath)
	}
	if catalogPath != "" {
		stars, err := starfield.ReadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
		return starfield.BuildIndex(stars), nil
	}
	return starfield.DefaultIndex(), nil
}

// renderFrame renders one scene descriptor, applies post-processing and
// writes the PNG.
func renderFrame(sc *scene.Scene, index *starfield.Index, workers int, outputDir string, n int, logger core.Logger) error {
	fr := renderer.NewFrameRenderer(sc, index, workers, logger)
	img, _, err := fr.Render()
	if err != nil {
		return err
	}

	img = post.Bloom(img, sc.Options.Bloom)

	filename := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", n))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	logger.Printf("Saved %s\n", filename)
	return nil
}
