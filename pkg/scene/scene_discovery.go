package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene types reported by discovery
const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"
)

// DefaultSceneID is rendered when no scene is requested
const DefaultSceneID = "random"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier, also accepted by Load
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // TypeBuiltin or TypeFile
	FilePath    string // Path to the JSON description (file type only)
	Spheres     int    // Number of spheres in the scene
}

type builtinScene struct {
	info SceneInfo
	// seed only matters for scenes with random content
	create func(seed int64) *Description
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "random",
			DisplayName: "Random Spheres",
			Description: "Field of small random spheres around three large ones",
		},
		create: NewRandomSceneDescription,
	},
	{
		info: SceneInfo{
			ID:          "hollow-glass",
			DisplayName: "Hollow Glass",
			Description: "Matte, hollow glass and fuzzy metal spheres on a large ground sphere",
		},
		create: func(int64) *Description { return NewHollowGlassSceneDescription() },
	},
	{
		info: SceneInfo{
			ID:          "single",
			DisplayName: "Single Sphere",
			Description: "One diffuse sphere in front of a pinhole camera",
		},
		create: func(int64) *Description { return NewSingleSphereSceneDescription() },
	},
}

// ListBuiltinScenes returns the scenes compiled into the program
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.Type = TypeBuiltin
		info.Spheres = len(b.create(1).Spheres)
		scenes = append(scenes, info)
	}
	return scenes
}

// ListFileScenes scans dir for JSON scene descriptions. A missing directory
// yields an empty list; files that fail to parse are skipped with a warning.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		desc, err := LoadDescription(filePath)
		if err != nil {
			logger.Warningf("Skipping scene file %s: %v", filePath, err)
			continue
		}

		filename := filepath.Base(filePath)
		nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))
		info := SceneInfo{
			ID:          filePath,
			DisplayName: titleCase(nameWithoutExt),
			Type:        TypeFile,
			FilePath:    filePath,
			Spheres:     len(desc.Spheres),
		}
		if desc.Name != filePath {
			info.Description = desc.Name
		}
		scenes = append(scenes, info)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ListAllScenes returns the built-in scenes first, then the scene files in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), fileScenes...), nil
}

// LoadDescriptionByID returns the description of a built-in scene by ID, or
// reads the file when id names a JSON description
func LoadDescriptionByID(id string, seed int64) (*Description, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(seed), nil
		}
	}
	if strings.HasSuffix(id, ".json") {
		return LoadDescription(id)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// Load resolves a scene by ID and builds it for the given aspect ratio
func Load(id string, aspectRatio float64, seed int64) (*Scene, error) {
	desc, err := LoadDescriptionByID(id, seed)
	if err != nil {
		return nil, err
	}
	return desc.Build(aspectRatio)
}

// titleCase converts a filename-style string to title case
// e.g., "hollow-glass" -> "Hollow Glass"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
