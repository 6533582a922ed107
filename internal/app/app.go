// Package app runs the interactive raylib window around the line editor:
// window and camera setup, the frame loop, input dispatch and the overlay.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golines/internal/editor"
	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/scene"
	"github.com/philipparndt/golines/pkg/watcher"
)

const (
	windowWidth   = 1400
	windowHeight  = 900
	watchDebounce = 300 * time.Millisecond
)

var backgroundColor = rl.NewColor(15, 18, 25, 255)

// Options configures the editor session
type Options struct {
	Scene     *scene.Scene
	SceneFile string // When set, the file is watched and reloaded on change
}

// Run opens the window and runs the editor until it is closed
func Run(opts Options) error {
	if opts.Scene == nil {
		opts.Scene = scene.Default()
	}

	app := &App{}
	app.Scene.scene = opts.Scene
	app.Scene.sceneFile = opts.SceneFile

	store := scene.Generate(opts.Scene)
	app.editor = editor.New(store)
	app.mesh = NewLineMesh()
	app.editor.AttachTarget(app.mesh)
	app.View.showOverlay = true

	app.setupCamera(store)

	if opts.SceneFile != "" {
		fw, err := watcher.New(opts.SceneFile, watchDebounce, func(string) {
			app.Scene.needsReload.Store(true)
		})
		if err != nil {
			return fmt.Errorf("failed to watch scene file: %w", err)
		}
		fw.Start()
		app.Scene.fileWatcher = fw
		defer fw.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "golines - "+opts.Scene.Name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)

	for !rl.WindowShouldClose() {
		if app.Scene.needsReload.Swap(false) {
			app.reloadScene()
		}

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.BeginMode3D(app.Camera.camera)
		if app.editor.DiscretePick() {
			app.drawDiscrete()
		} else {
			app.mesh.Draw()
		}
		app.drawHandles()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}

// setupCamera frames the generated scene: target at the bounding box center,
// distance scaled to the largest dimension
func (app *App) setupCamera(store *lines.Store) {
	stats := analysis.AnalyzeStore(store)
	center := stats.BoundingBox.Center()
	size := stats.BoundingBox.MaxDimension()
	if size <= 0 {
		size = 10
	}
	app.Scene.size = float32(size)

	app.Camera.center = toRlVector3(center)
	app.Camera.target = app.Camera.center
	app.Camera.defaultDist = float32(size) * 2.0
	app.Camera.defaultAngleX = 0.3
	app.Camera.defaultAngleY = 0.3
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: app.Camera.center.X, Y: app.Camera.center.Y, Z: app.Camera.center.Z + app.Camera.distance},
		Target:     app.Camera.center,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// reloadScene re-reads the scene file and regenerates the store. The previous
// scene stays active when the file fails to parse.
func (app *App) reloadScene() {
	s, err := scene.Load(app.Scene.sceneFile)
	if err != nil {
		fmt.Printf("Scene reload failed, keeping previous: %v\n", err)
		return
	}
	app.Scene.scene = s
	store := scene.Generate(s)
	app.editor.ReplaceStore(store)
	app.setupCamera(store)
	fmt.Printf("Reloaded scene %s (%d lines)\n", s.Name, store.LineCount())
}

// drawHandles renders the point markers of the selected line as small
// spheres, with the dragged one emphasized
func (app *App) drawHandles() {
	handles := app.editor.Handles()
	if len(handles) == 0 {
		return
	}
	radius := app.Scene.size * 0.008

	dragLine, dragPoint, dragging := app.editor.DragTarget()
	for _, h := range handles {
		color := rl.NewColor(255, 217, 26, 255)
		r := radius
		if dragging && h.Line == dragLine && h.Point == dragPoint {
			color = rl.White
			r = radius * 1.4
		}
		rl.DrawSphere(toRlVector3(h.Position), r, color)
	}
}

// drawDiscrete renders every line as its own draw calls straight from the
// store, bypassing the flat buffers. Used for the pick-path comparison mode.
func (app *App) drawDiscrete() {
	hovered := app.editor.Hovered()
	selected := app.editor.Selected()

	for i := 0; i < app.editor.Store().LineCount(); i++ {
		line := app.editor.Store().Line(i)
		if !line.Alive() {
			continue
		}

		var tint rl.Color
		switch {
		case i == selected:
			tint = floatsToColor(lines.SelectionColor[0], lines.SelectionColor[1], lines.SelectionColor[2])
		case i == hovered:
			tint = floatsToColor(lines.HoverColor[0], lines.HoverColor[1], lines.HoverColor[2])
		default:
			tint = floatsToColor(line.BaseColor[0], line.BaseColor[1], line.BaseColor[2])
		}

		for s := 0; s+1 < len(line.Points); s++ {
			rl.DrawLine3D(toRlVector3(line.Points[s]), toRlVector3(line.Points[s+1]), tint)
		}
	}
}
