package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Identifier accepted by Create
	DisplayName string // Human readable name
	Description string // One-line description for help output
}

type sceneFactory func(seed int64, overrides ...geometry.CameraConfig) *Scene

var builtInScenes = map[string]struct {
	info    SceneInfo
	factory sceneFactory
}{
	"default": {
		SceneInfo{"default", "Default Scene", "Diffuse, hollow glass and gold spheres on a ground sphere"},
		func(_ int64, overrides ...geometry.CameraConfig) *Scene { return NewDefaultScene(overrides...) },
	},
	"simple": {
		SceneInfo{"simple", "Simple Scene", "Single diffuse sphere above a ground sphere"},
		func(_ int64, overrides ...geometry.CameraConfig) *Scene { return NewSimpleScene(overrides...) },
	},
	"depth-of-field": {
		SceneInfo{"depth-of-field", "Depth of Field", "Default scene through a wide aperture focused on the center sphere"},
		func(_ int64, overrides ...geometry.CameraConfig) *Scene { return NewDepthOfFieldScene(overrides...) },
	},
	"spheregrid": {
		SceneInfo{"spheregrid", "Sphere Grid", "Random field of small spheres around three large ones"},
		NewSphereGridScene,
	},
}

// ListAllScenes returns the built-in scenes sorted by ID
func ListAllScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].ID < scenes[j].ID })
	return scenes
}

// Names returns the IDs of all built-in scenes
func Names() []string {
	scenes := ListAllScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

// Create builds the named scene. The seed only affects procedurally generated
// scenes; non-zero fields of cameraOverrides replace the scene's camera settings.
func Create(name string, seed int64, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return entry.factory(seed, cameraOverrides...), nil
}
