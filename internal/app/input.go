package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golines/pkg/geometry"
)

// pickTolerance is the effective hit radius around a segment, scaled with
// camera distance so it corresponds to a roughly constant screen-space
// threshold. Lines are drawn one pixel thin; without the widened radius
// they would be nearly impossible to hit.
func (app *App) pickTolerance() float64 {
	return float64(app.Camera.distance) * 0.012
}

// handlePickRadius is the pick radius for point handles, slightly wider
// than the drawn marker
func (app *App) handlePickRadius() float64 {
	return float64(app.Camera.distance) * 0.018
}

// pointerRay builds the picking ray for the current mouse position
func (app *App) pointerRay() geometry.Ray {
	ray := rl.GetMouseRay(rl.GetMousePosition(), app.Camera.camera)
	return geometry.NewRay(toVector3(ray.Position), toVector3(ray.Direction))
}

// handleInput processes user input for one frame
func (app *App) handleInput() {
	ray := app.pointerRay()

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
		app.Interaction.dragStarted = false

		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed

		// With a line selected, a press on one of its handles starts a
		// point drag and suspends camera orbiting for its duration
		if !app.Interaction.isPanning {
			viewDir := toVector3(app.viewDirection())
			app.Interaction.dragStarted = app.editor.StartDrag(ray, app.handlePickRadius(), viewDir)
		}
	}

	// Camera panning with Shift + drag or middle mouse button
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.editor.Dragging() {
		// Active point drag: track the pointer on the drag plane
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.editor.DragTo(ray)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		// Camera rotation with mouse drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.angleY += delta.X * 0.01
			app.Camera.angleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.Camera.angleX > 1.5 {
				app.Camera.angleX = 1.5
			}
			if app.Camera.angleX < -1.5 {
				app.Camera.angleX = -1.5
			}
		}
	}

	// Release is handled regardless of where the pointer is, so a drag
	// that leaves the canvas still terminates
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		wasDragging := app.editor.Dragging()
		app.editor.EndDrag()

		dragDistance := rl.Vector2Distance(app.Interaction.mouseDownPos, rl.GetMousePosition())
		if !wasDragging && !app.Interaction.dragStarted && !app.Interaction.isPanning &&
			!app.Interaction.mouseMoved && dragDistance < 5.0 {
			app.editor.ClickAt(ray, app.pickTolerance())
		}
		app.Interaction.isPanning = false
		app.Interaction.dragStarted = false
	}

	// Right click on a handle deletes that point
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		app.editor.DeletePointAt(ray, app.handlePickRadius())
	}

	// Hover highlight (only when no button is held)
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.editor.HoverAt(ray, app.pickTolerance())
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.distance *= (1.0 - wheel*0.03)
		if app.Camera.distance < 1.0 {
			app.Camera.distance = 1.0
		}
	}

	// Delete the selected line. This arrives as an external command
	// carrying the line index; the editor ignores it when stale.
	if rl.IsKeyPressed(rl.KeyX) || rl.IsKeyPressed(rl.KeyBackspace) {
		app.editor.DeleteLine(app.editor.Selected())
	}

	if rl.IsKeyPressed(rl.KeyP) {
		app.editor.ToggleDiscretePick()
	}
	if rl.IsKeyPressed(rl.KeyO) {
		app.View.showOverlay = !app.View.showOverlay
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyEscape) && app.editor.Selected() >= 0 {
		// Clear selection without clicking into the void
		app.editor.ClickAt(geometry.NewRay(geometry.NewVector3(0, 0, 1e9), geometry.NewVector3(0, 0, 1)), 0)
	}
}

func toVector3(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

func toRlVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
