package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

var logger = log.New("output")

// Encoder writes a frame in a particular image format
type Encoder func(w io.Writer, frame *renderer.Frame) error

// EncoderForPath selects the image format from the file extension. PNG is
// used for ".png"; everything else is written as PPM.
func EncoderForPath(path string) Encoder {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return WritePNG
	}
	return WritePPM
}

// SaveFrame writes the frame to path in the format chosen by its extension.
// The image is written to a temporary file in the same directory and renamed
// into place, so path either holds the complete image or is left untouched.
func SaveFrame(path string, frame *renderer.Frame) error {
	return saveFrame(path, frame, EncoderForPath(path))
}

func saveFrame(path string, frame *renderer.Frame, encode Encoder) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, frame); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output file into place: %w", err)
	}

	logger.Infof("Wrote %dx%d image to %s", frame.Width, frame.Height, path)
	return nil
}
