package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golines/internal/editor"
	"github.com/philipparndt/golines/pkg/scene"
	"github.com/philipparndt/golines/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	center        rl.Vector3 // Scene center (for reset)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// SceneState holds the scene definition and live-reload state
type SceneState struct {
	scene       *scene.Scene
	sceneFile   string               // Path of the scene file, empty when generated from flags
	fileWatcher *watcher.FileWatcher // Watcher for auto-reload, nil without a scene file
	needsReload atomic.Bool          // Set from the watcher goroutine when the file changed
	size        float32              // Max scene dimension, for marker scaling
}

// ViewSettings holds display settings
type ViewSettings struct {
	showOverlay bool
	showHelp    bool
}

// InteractionState holds mouse state the editor does not own itself
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	dragStarted  bool // A handle drag began on the current press
}

// App wires the editor, the batched line mesh and the raylib window
type App struct {
	Camera      CameraState
	Scene       SceneState
	View        ViewSettings
	Interaction InteractionState

	editor *editor.Editor
	mesh   *LineMesh
}
