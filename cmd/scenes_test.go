package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func TestWriteSceneTable(t *testing.T) {
	var buf bytes.Buffer
	writeSceneTable(&buf, scene.ListBuiltinScenes())

	out := buf.String()
	for _, expected := range []string{"random (default)", "hollow-glass", "Single Sphere", "builtin"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected table to contain %q:\n%s", expected, out)
		}
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	if n := defaultWorkerCount(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}
