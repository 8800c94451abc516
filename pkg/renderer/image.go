package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// Image is a 2D buffer of accumulated linear RGB colors. Pixel (i, j)
// addresses column i and row j, with row 0 at the bottom of the image.
type Image struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImage creates a new black image with the given dimensions
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels
func (img *Image) Height() int {
	return img.height
}

// At returns the color at column i, row j
func (img *Image) At(i, j int) core.Vec3 {
	return img.pixels[j*img.width+i]
}

// Set writes the color at column i, row j
func (img *Image) Set(i, j int, c core.Vec3) {
	img.pixels[j*img.width+i] = c
}

// PPMRows converts the buffer to gamma-corrected pixel rows of three
// space-separated integers in [0, 255]. Rows are emitted top to bottom,
// i.e. buffer row height-1 first and row 0 last.
func (img *Image) PPMRows() []string {
	rows := make([]string, 0, img.width*img.height)
	for j := img.height - 1; j >= 0; j-- {
		for i := 0; i < img.width; i++ {
			rows = append(rows, formatPixel(img.At(i, j).GammaCorrect(2.0)))
		}
	}
	return rows
}

// LinearRows converts the buffer to pixel rows without gamma correction,
// in the same order as PPMRows
func (img *Image) LinearRows() []string {
	rows := make([]string, 0, img.width*img.height)
	for j := img.height - 1; j >= 0; j-- {
		for i := 0; i < img.width; i++ {
			rows = append(rows, formatPixel(img.At(i, j)))
		}
	}
	return rows
}

// WritePPM serializes the image in plain-text PPM (P3) format with
// gamma-corrected pixel values
func (img *Image) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.width, img.height); err != nil {
		return err
	}
	for _, row := range img.PPMRows() {
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ToRGBA converts the buffer to a standard library RGBA image with
// gamma correction, for PNG output
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for j := 0; j < img.height; j++ {
		for i := 0; i < img.width; i++ {
			c := img.At(i, j).GammaCorrect(2.0).Clamp(0.0, 0.999)
			// Row 0 is at the bottom of the image, RGBA row 0 at the top
			rgba.SetRGBA(i, img.height-1-j, color.RGBA{
				R: uint8(256 * c.X),
				G: uint8(256 * c.Y),
				B: uint8(256 * c.Z),
				A: 255,
			})
		}
	}
	return rgba
}

func formatPixel(c core.Vec3) string {
	c = c.Clamp(0.0, 0.999)
	return fmt.Sprintf("%d %d %d", int(256*c.X), int(256*c.Y), int(256*c.Z))
}
