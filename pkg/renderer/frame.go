package renderer

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// Frame is a finished image stored as rows ordered top to bottom
type Frame struct {
	Width  int
	Height int
	Rows   [][]color.RGBA
}

// Image copies the frame into an image.RGBA
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, row := range f.Rows {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// AssembleRows orders completed rows top to bottom regardless of the order
// they arrived in. Every row in [0, height) must appear exactly once with
// width pixels, otherwise ErrIncompleteFrame is returned.
func AssembleRows(results []RowResult, width, height int) (*Frame, error) {
	if len(results) != height {
		return nil, fmt.Errorf("%w: have %d rows, want %d", ErrIncompleteFrame, len(results), height)
	}

	sorted := make([]RowResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Row < sorted[j].Row
	})

	frame := &Frame{
		Width:  width,
		Height: height,
		Rows:   make([][]color.RGBA, height),
	}
	for i, result := range sorted {
		if result.Row != i {
			return nil, fmt.Errorf("%w: expected row %d, found row %d", ErrIncompleteFrame, i, result.Row)
		}
		if len(result.Pixels) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrIncompleteFrame, i, len(result.Pixels), width)
		}
		frame.Rows[i] = result.Pixels
	}
	return frame, nil
}
