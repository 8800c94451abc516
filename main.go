package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ErikssonM/weekend-tracer/pkg/renderer"
	"github.com/ErikssonM/weekend-tracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'simple'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 8, "Samples per pixel within each pass")
	passes := flag.Int("passes", 8, "Number of independent render passes")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weekend Tracer")
		fmt.Println("Usage: weekend-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cover  - Random sphere field with glass, diffuse and metal feature spheres")
		fmt.Println("  simple - Three spheres (diffuse, hollow glass, fuzzy metal) on a ground sphere")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	var selectedScene *scene.Scene
	switch *sceneType {
	case "simple":
		selectedScene = scene.NewSimpleScene()
	case "cover":
		selectedScene = scene.NewCoverScene(rand.New(rand.NewSource(*seed)))
	default:
		fmt.Printf("Unknown scene type: %s. Using cover scene.\n", *sceneType)
		selectedScene = scene.NewCoverScene(rand.New(rand.NewSource(*seed)))
		*sceneType = "cover"
	}

	imgWidth := selectedScene.Width
	imgHeight := selectedScene.Height
	if *width > 0 {
		imgWidth = *width
		imgHeight = imgWidth * selectedScene.Height / selectedScene.Width
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	runner := renderer.NewPassRunner(selectedScene.Camera, selectedScene.World,
		imgWidth, imgHeight, renderer.PassConfig{
			Passes:          *passes,
			SamplesPerPixel: *samples,
			MaxDepth:        *maxDepth,
			NumWorkers:      *workers,
			Seed:            *seed,
		}, renderer.NewDefaultLogger())

	img, stats, err := runner.Run(context.Background())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v (%d samples/pixel over %d passes)\n",
		stats.Elapsed, stats.TotalSamples, stats.Passes)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	if err := writeImage(img, filename, *format); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// writeImage serializes the image to a file in the requested format
func writeImage(img *renderer.Image, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "png":
		return png.Encode(file, img.ToRGBA())
	case "ppm":
		return img.WritePPM(file)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
