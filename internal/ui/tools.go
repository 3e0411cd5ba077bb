package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalMeasure/internal/render"
)

// colorSwatch is a small legend square for one rectangle color.
type colorSwatch struct {
	widget.BaseWidget
	Color color.Color
}

func newColorSwatch(c color.Color) *colorSwatch {
	s := &colorSwatch{Color: c}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(16, 16))
	rect.CornerRadius = render.CornerRadius

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	border.CornerRadius = render.CornerRadius

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

// Actions are the toolbar commands.
type Actions struct {
	Undo, Redo, Clear    func()
	Save, New            func()
	Export, ClearRecords func()
}

// Toolbar holds the action bar and the live distance readout.
type Toolbar struct {
	widget.BaseWidget
	content    fyne.CanvasObject
	undo, redo *widget.ToolbarAction
	save       *widget.ToolbarAction
	bar        *widget.Toolbar
	Distance   *widget.Label
}

func NewToolbar(a Actions) *Toolbar {
	t := &Toolbar{Distance: widget.NewLabel("")}
	t.undo = widget.NewToolbarAction(theme.ContentUndoIcon(), a.Undo)
	t.redo = widget.NewToolbarAction(theme.ContentRedoIcon(), a.Redo)
	t.save = widget.NewToolbarAction(theme.DocumentSaveIcon(), a.Save)
	t.bar = widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), a.New),
		t.save,
		widget.NewToolbarSeparator(),
		t.undo,
		t.redo,
		widget.NewToolbarAction(theme.ContentClearIcon(), a.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DownloadIcon(), a.Export),
		widget.NewToolbarAction(theme.DeleteIcon(), a.ClearRecords),
	)

	legend := container.NewHBox()
	for i := range render.Palette {
		legend.Add(newColorSwatch(render.StyleFor(i).Stroke))
		legend.Add(widget.NewLabel(fmt.Sprintf("Rectangle %d", i+1)))
	}

	t.content = container.NewHBox(
		t.bar,
		widget.NewSeparator(),
		legend,
		layout.NewSpacer(),
		t.Distance,
	)
	t.ExtendBaseWidget(t)
	return t
}

func (t *Toolbar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// SetState enables the history and save actions to match the surface.
func (t *Toolbar) SetState(canUndo, canRedo, canSave bool) {
	setEnabled(t.undo, canUndo)
	setEnabled(t.redo, canRedo)
	setEnabled(t.save, canSave)
	t.bar.Refresh()
}

func setEnabled(a *widget.ToolbarAction, on bool) {
	if on {
		a.Enable()
	} else {
		a.Disable()
	}
}
