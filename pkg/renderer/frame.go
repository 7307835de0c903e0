package renderer

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/theRealZauberwuerfel/blackstar/pkg/core"
	"github.com/theRealZauberwuerfel/blackstar/pkg/scene"
	"github.com/theRealZauberwuerfel/blackstar/pkg/starfield"
)

// RenderStats summarizes one finished frame.
type RenderStats struct {
	Width, Height int
	Rays          RayTally
	Workers       int
	Elapsed       time.Duration
}

// FrameRenderer maps the per-pixel ray tracer over the full pixel grid in
// parallel. Rows are the unit of work: each worker pulls row indices from
// a channel and writes only to its own rows of the shared output buffer,
// so no synchronization is needed on the pixels themselves.
type FrameRenderer struct {
	scene      *scene.Scene
	index      *starfield.Index
	numWorkers int
	logger     core.Logger
}

// NewFrameRenderer creates a frame renderer. numWorkers <= 0 selects the
// CPU count.
func NewFrameRenderer(sc *scene.Scene, index *starfield.Index, numWorkers int, logger core.Logger) *FrameRenderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NewDefaultLogger()
	}
	return &FrameRenderer{
		scene:      sc,
		index:      index,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// Render produces the complete frame. The image is a deterministic
// function of (scene, index) alone: worker count and scheduling order
// never change the output, only which goroutine computes which row.
func (fr *FrameRenderer) Render() (*image.RGBA, RenderStats, error) {
	width := fr.scene.Camera.Width
	height := fr.scene.Camera.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid resolution %dx%d", width, height)
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rows := make(chan int, height)
	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	tallies := make([]RayTally, fr.numWorkers)
	var wg sync.WaitGroup
	for w := 0; w < fr.numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rt := NewRaytracer(fr.scene, fr.index)
			tally := &tallies[workerID]
			for j := range rows {
				for i := 0; i < width; i++ {
					img.SetRGBA(i, j, core.ToRGBA(rt.TracePixel(i, j, tally)))
				}
			}
		}(w)
	}
	wg.Wait()

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Workers: fr.numWorkers,
		Elapsed: time.Since(start),
	}
	for _, t := range tallies {
		stats.Rays.add(t)
	}

	fr.logger.Printf("Rendered %dx%d in %v: %d rays (%d captured, %d disk, %d escaped, %d exhausted)\n",
		width, height, stats.Elapsed, stats.Rays.Total(),
		stats.Rays.Captured, stats.Rays.DiskHits, stats.Rays.Escaped, stats.Rays.Exhausted)

	return img, stats, nil
}
