package renderer

import (
	"fmt"

	"github.com/ErikssonM/weekend-tracer/pkg/core"
)

// MergeSamples produces the element-wise mean of independently rendered
// images of equal dimensions. Returns an error if the input is empty or
// the dimensions are mismatched.
func MergeSamples(images []*Image) (*Image, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("merge: no images to merge")
	}

	width := images[0].Width()
	height := images[0].Height()
	for n, img := range images[1:] {
		if img.Width() != width || img.Height() != height {
			return nil, fmt.Errorf("merge: image %d is %dx%d, expected %dx%d",
				n+1, img.Width(), img.Height(), width, height)
		}
	}

	merged := NewImage(width, height)
	ratio := 1.0 / float64(len(images))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			sum := core.Vec3{}
			for _, img := range images {
				sum = sum.Add(img.At(i, j))
			}
			merged.Set(i, j, sum.Multiply(ratio))
		}
	}

	return merged, nil
}
