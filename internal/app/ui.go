package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golines/pkg/analysis"
	"github.com/philipparndt/golines/version"
)

var (
	uiTextColor   = rl.NewColor(220, 220, 220, 255)
	uiDimColor    = rl.NewColor(140, 140, 140, 255)
	uiAccentColor = rl.NewColor(255, 217, 26, 255)
	uiPanelColor  = rl.NewColor(15, 18, 25, 200)
)

// drawUI renders the 2D overlay: scene statistics, interaction state,
// per-operation timings and the controls help
func (app *App) drawUI() {
	if app.View.showOverlay {
		app.drawStatsPanel()
	}
	if app.View.showHelp {
		app.drawHelpPanel()
	}

	// Mode indicator, bottom right
	mode := "batched"
	if app.editor.DiscretePick() {
		mode = "discrete"
	}
	modeText := fmt.Sprintf("pick: %s  |  %d fps", mode, rl.GetFPS())
	rl.DrawText(modeText, int32(rl.GetScreenWidth())-rl.MeasureText(modeText, 18)-12,
		int32(rl.GetScreenHeight())-26, 18, uiDimColor)

	// Version, bottom left
	rl.DrawText(version.GetVersion(), 12, int32(rl.GetScreenHeight())-26, 18, uiDimColor)
}

func (app *App) drawStatsPanel() {
	stats := analysis.AnalyzeStore(app.editor.Store())

	x := int32(12)
	y := int32(12)
	lineHeight := int32(22)

	drawLine := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, 18, color)
		y += lineHeight
	}

	panelHeight := lineHeight*9 + int32(len(app.editor.Timings().Entries()))*lineHeight + 16
	rl.DrawRectangle(4, 4, 340, panelHeight, uiPanelColor)

	if app.Scene.scene != nil {
		drawLine(app.Scene.scene.Name, uiTextColor)
	}
	drawLine(fmt.Sprintf("lines: %d alive, %d deleted", stats.AliveLines, stats.DeadLines), uiTextColor)
	drawLine(fmt.Sprintf("points: %d  segments: %d", stats.PointCount, stats.SegmentCount), uiTextColor)
	drawLine(fmt.Sprintf("size: %s", analysis.FormatVector(stats.Dimensions)), uiTextColor)
	drawLine(fmt.Sprintf("total length: %.1f", stats.TotalLength), uiTextColor)
	y += lineHeight / 2

	drawLine(app.editor.DebugString(), uiAccentColor)
	y += lineHeight / 2

	// Per-operation timings of the last edit/pick cycle
	for _, entry := range app.editor.Timings().Entries() {
		drawLine(fmt.Sprintf("%-12s %6d us", entry.Name, entry.Elapsed.Microseconds()), uiDimColor)
	}

	if app.Scene.sceneFile != "" {
		y += lineHeight / 2
		drawLine(fmt.Sprintf("watching %s", app.Scene.sceneFile), uiDimColor)
	}
}

func (app *App) drawHelpPanel() {
	help := []string{
		"left click       select line / add point on selected",
		"drag handle      move point",
		"right click      delete point",
		"x / backspace    delete selected line",
		"shift+drag       pan   |   drag: orbit   |   wheel: zoom",
		"t b 1-4 home     camera views",
		"p                toggle discrete picking",
		"o                toggle overlay   h: this help",
	}

	lineHeight := int32(22)
	y := int32(rl.GetScreenHeight()) - int32(len(help))*lineHeight - 40

	rl.DrawRectangle(4, y-8, 560, int32(len(help))*lineHeight+16, uiPanelColor)
	for _, text := range help {
		rl.DrawText(text, 12, y, 18, uiTextColor)
		y += lineHeight
	}
}
