package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed scenes/*.yaml
var embeddedScenes embed.FS

// DefaultScene is loaded when no scene name is given.
const DefaultScene = "classic"

// ErrSceneNotFound is returned when no search location holds the scene.
var ErrSceneNotFound = errors.New("scene not found")

// Load loads a scene by name.
// Search order: customPath -> ~/.sudokugfx/scenes/<name>.yaml -> ./scenes/<name>.yaml -> embedded
func Load(name, customPath string) (Scene, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to read scene %s: %w", customPath, err)
		}
		return parseNamed(data, customPath, sceneName(customPath))
	}

	if name == "" {
		name = DefaultScene
	}
	filename := name + ".yaml"

	// Try user scene directory
	if userPath := userScenePath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parseNamed(data, userPath, name)
		}
	}

	// Try local scenes directory
	localPath := filepath.Join("scenes", filename)
	if data, err := os.ReadFile(localPath); err == nil {
		return parseNamed(data, localPath, name)
	}

	// Use embedded scene
	data, err := embeddedScenes.ReadFile(path.Join("scenes", filename))
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	return parseNamed(data, "embedded:"+filename, name)
}

// Parse decodes a scene document.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Embedded returns the names of the built-in scenes, sorted.
func Embedded() []string {
	entries, err := fs.ReadDir(embeddedScenes, "scenes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func parseNamed(data []byte, source, name string) (Scene, error) {
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene %s: %w", source, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

func sceneName(p string) string {
	return strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
}

// userScenePath returns the path to a user scene file, or empty if home is unavailable.
func userScenePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sudokugfx", "scenes", filename)
}
