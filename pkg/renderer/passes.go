package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PassConfig contains configuration for multi-pass rendering
type PassConfig struct {
	Passes          int   // Number of independent full-image passes
	SamplesPerPixel int   // Samples per pixel within each pass
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for per-pass random sources
}

// DefaultPassConfig returns sensible default values
func DefaultPassConfig() PassConfig {
	return PassConfig{
		Passes:          8,
		SamplesPerPixel: 8,
		MaxDepth:        50,
		NumWorkers:      0,
		Seed:            42,
	}
}

// RunStats contains statistics about a multi-pass render
type RunStats struct {
	Passes       int           // Number of passes rendered
	TotalSamples int           // Effective samples per pixel across all passes
	Elapsed      time.Duration // Wall-clock render time, excluding the merge
}

// newPassRandom derives an independent random source for a pass, keyed off
// the pass index so scheduling order cannot correlate noise across passes
func newPassRandom(seed int64, pass int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(pass)))
}

// PassRunner renders independent full-image passes on a pool of worker
// goroutines and merges them into a final image. Each pass draws from its
// own seeded random source, so results are deterministic for a fixed base
// seed regardless of scheduling.
type PassRunner struct {
	camera *Camera
	world  core.Hittable
	width  int
	height int
	config PassConfig
	logger core.Logger
}

// NewPassRunner creates a new pass runner. The scene and camera are shared
// read-only across workers.
func NewPassRunner(camera *Camera, world core.Hittable, width, height int, config PassConfig, logger core.Logger) *PassRunner {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	return &PassRunner{
		camera: camera,
		world:  world,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Run renders all passes and returns the merged image. Cancelling the
// context discards any unstarted passes and returns the context error;
// there is no partial result.
func (pr *PassRunner) Run(ctx context.Context) (*Image, RunStats, error) {
	start := time.Now()
	pr.logger.Printf("Rendering %d passes of %d samples/pixel using %d workers...\n",
		pr.config.Passes, pr.config.SamplesPerPixel, pr.config.NumWorkers)

	tasks := make(chan int, pr.config.Passes)
	images := make([]*Image, pr.config.Passes)

	var wg sync.WaitGroup
	for w := 0; w < pr.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pass := range tasks {
				passStart := time.Now()

				random := newPassRandom(pr.config.Seed, pass)
				images[pass] = Render(pr.camera, pr.world, pr.width, pr.height,
					pr.config.SamplesPerPixel, pr.config.MaxDepth, random)

				pr.logger.Printf("Pass %d of %d completed in %v\n",
					pass+1, pr.config.Passes, time.Since(passStart))
			}
		}()
	}

	for pass := 0; pass < pr.config.Passes; pass++ {
		select {
		case <-ctx.Done():
			close(tasks)
			wg.Wait()
			return nil, RunStats{}, ctx.Err()
		case tasks <- pass:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RunStats{}, err
	}

	stats := RunStats{
		Passes:       pr.config.Passes,
		TotalSamples: pr.config.Passes * pr.config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}

	merged, err := MergeSamples(images)
	if err != nil {
		return nil, RunStats{}, err
	}

	return merged, stats, nil
}
