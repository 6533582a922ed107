package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/pkg/lines"
	"github.com/philipparndt/golines/pkg/scene"
	"github.com/philipparndt/golines/pkg/viewer"
)

type App struct {
	window   fyne.Window
	scene    *scene.Scene
	store    *lines.Store
	renderer *viewer.LineRenderer

	sceneInfoLabel *widget.Label
	selectionLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("golines - Scene Viewer")

	appInstance := &App{
		window: w,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.loadScene(scene.Default())
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	s, err := scene.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load scene: %w", err), a.window)
		return
	}
	a.loadScene(s)
}

func (a *App) loadScene(s *scene.Scene) {
	a.scene = s
	a.store = scene.Generate(s)
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.sceneInfoLabel = widget.NewLabel("")
	a.selectionLabel = widget.NewLabel("Selection: none")

	a.renderer = viewer.NewLineRenderer(a.store)
	a.renderer.SetOnSelect(func(lineIndex int) {
		a.updateSelection(lineIndex)
	})

	openButton := widget.NewButton("Open Scene", func() {
		a.showFileDialog()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.renderer.ClearSelection()
	})

	stats := analysis.AnalyzeStore(a.store)
	a.sceneInfoLabel.SetText(fmt.Sprintf(
		"Scene: %s\nLines: %d\nPoints: %d\nSegments: %d\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.scene.Name,
		stats.AliveLines,
		stats.PointCount,
		stats.SegmentCount,
		stats.Dimensions.X,
		stats.Dimensions.Y,
		stats.Dimensions.Z,
	))

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Tap a line to select it\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Editing lives in the golines command",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene Information:"),
		widget.NewSeparator(),
		a.sceneInfoLabel,
		widget.NewSeparator(),
		a.selectionLabel,
		widget.NewSeparator(),
		instructions,
		layout.NewSpacer(),
		widget.NewSeparator(),
		openButton,
		clearButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	a.renderer.Render(800, 600)
}

func (a *App) updateSelection(lineIndex int) {
	if lineIndex < 0 {
		a.selectionLabel.SetText("Selection: none")
		return
	}

	line := a.store.Line(lineIndex)
	length := 0.0
	for p := 0; p+1 < len(line.Points); p++ {
		length += line.Points[p].Distance(line.Points[p+1])
	}
	a.selectionLabel.SetText(fmt.Sprintf(
		"Selection: line %d\nPoints: %d\nSegments: %d\nLength: %.2f",
		lineIndex, len(line.Points), line.SegmentCount(), length,
	))
}
