package output

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// createTestFrame builds a frame whose red channel encodes the row and green
// channel the column
func createTestFrame(width, height int) *renderer.Frame {
	frame := &renderer.Frame{Width: width, Height: height, Rows: make([][]color.RGBA, height)}
	for y := range frame.Rows {
		frame.Rows[y] = make([]color.RGBA, width)
		for x := range frame.Rows[y] {
			frame.Rows[y][x] = color.RGBA{R: uint8(10 * y), G: uint8(x), B: 255, A: 255}
		}
	}
	return frame
}

func TestWritePPM_Header(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, createTestFrame(3, 2)); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "P3\n3 2\n255\n") {
		t.Fatalf("Unexpected header: %q", out[:min(len(out), 20)])
	}

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "P3\n3 2\n255\n"), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Expected 6 pixel lines, got %d", len(lines))
	}

	expected := []string{"0 0 255", "0 1 255", "0 2 255", "10 0 255", "10 1 255", "10 2 255"}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], line)
		}
	}
}

// failingWriter accepts limit bytes and then fails
type failingWriter struct {
	limit int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		n := f.limit
		f.limit = 0
		return n, errors.New("disk full")
	}
	f.limit -= len(p)
	return len(p), nil
}

func TestWritePPM_WriteError(t *testing.T) {
	// Large enough to overflow the bufio buffer
	err := WritePPM(&failingWriter{limit: 100}, createTestFrame(200, 50))
	if err == nil {
		t.Fatal("Expected write error")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, createTestFrame(4, 3)); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %v", img.Bounds())
	}
	r, g, _, _ := img.At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 2 {
		t.Errorf("Expected pixel (2, 1) = (10, 2), got (%d, %d)", r>>8, g>>8)
	}
}

func TestEncoderForPath(t *testing.T) {
	frame := createTestFrame(1, 1)
	tests := []struct {
		path   string
		prefix string
	}{
		{"image.ppm", "P3"},
		{"out/IMAGE.PNG", "\x89PNG"},
		{"render.png", "\x89PNG"},
		{"noext", "P3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			if err := EncoderForPath(tt.path)(&buf, frame); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("Expected output starting with %q", tt.prefix)
			}
		})
	}
}

func TestSaveFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "image.ppm")
	if err := SaveFrame(path, createTestFrame(3, 2)); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved image: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n3 2\n255\n") {
		t.Errorf("Unexpected file contents: %q", string(data))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the image in the output directory, found %d entries", len(entries))
	}
}

func TestSaveFrame_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.ppm")

	failing := func(w io.Writer, frame *renderer.Frame) error {
		if _, err := io.WriteString(w, "P3\n"); err != nil {
			return err
		}
		return errors.New("encoder exploded")
	}

	if err := saveFrame(path, createTestFrame(2, 2), failing); err == nil {
		t.Fatal("Expected save to fail")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files after a failed save, found %d", len(entries))
	}
}

func TestSaveFrame_KeepsPreviousImageOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.ppm")
	if err := os.WriteFile(path, []byte("previous"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	failing := func(w io.Writer, frame *renderer.Frame) error { return errors.New("boom") }
	if err := saveFrame(path, createTestFrame(2, 2), failing); err == nil {
		t.Fatal("Expected save to fail")
	}

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "previous" {
		t.Errorf("Expected previous image to survive, got %q (%v)", data, err)
	}
}
