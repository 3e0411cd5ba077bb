// Package ui is the Fyne front end: the measuring canvas, toolbar and the
// list of saved measurements.
package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/controller"
	"LocalMeasure/internal/geometry"
	feed "LocalMeasure/internal/net"
	"LocalMeasure/internal/state"
	"LocalMeasure/internal/store"
	"LocalMeasure/internal/store/kv"
)

const watchDebounce = 200 * time.Millisecond

// Options configures RunApp.
type Options struct {
	Config config.Config
	Store  *store.Store
	// WatchPath, when set, is a file reloaded on outside changes.
	WatchPath string
}

// MainView is the assembled window content and the controller behind it.
type MainView struct {
	Window     fyne.Window
	Surface    *state.Surface
	Controller *controller.Controller
	Board      *BoardWidget
	Toolbar    *Toolbar
	Records    *RecordList
	Status     *widget.Label
}

// NewMainView builds the measuring UI over st inside w.
func NewMainView(w fyne.Window, cfg config.Config, st *store.Store) *MainView {
	v := &MainView{
		Window:     w,
		Surface:    state.NewSurface(cfg.HistoryLimit),
		Controller: controller.New(st),
		Records:    NewRecordList(),
		Status:     widget.NewLabel("Ready"),
	}
	v.Board = NewBoardWidget(v.Surface, cfg.CanvasSize())
	v.Controller.Bind(v.Surface)

	v.Toolbar = NewToolbar(Actions{
		Undo:  func() { v.Surface.Undo() },
		Redo:  func() { v.Surface.Redo() },
		Clear: v.Surface.Clear,
		Save:  v.Save,
		New:   v.Controller.NewMeasurement,
		Export: func() {
			showExportDialog(w, v.Controller.Records(), cfg.CanvasSize(), v.SetStatus)
		},
		ClearRecords: v.confirmClearRecords,
	})

	v.Board.OnChanged = v.updateActions
	v.Controller.OnWorkingChanged = v.updateDistance
	v.Controller.OnRecordsChanged = v.Records.SetRecords
	v.Controller.OnSelectionChanged = func(id string) {
		v.Records.SetSelected(id)
		v.updateActions()
	}
	v.Records.OnSelect = func(r store.Record) {
		v.Controller.Select(r.ID)
		v.SetStatus("Viewing measurement from " + r.DisplayTime())
	}
	v.Records.OnDelete = v.Delete

	v.Records.SetRecords(v.Controller.Records())
	v.updateDistance(v.Controller.Rectangles())
	v.updateActions()
	v.addShortcuts()

	split := container.NewHSplit(v.Board, v.Records)
	split.Offset = 0.7
	w.SetContent(container.NewBorder(v.Toolbar, v.Status, nil, nil, split))
	return v
}

// SetStatus shows text in the status line.
func (v *MainView) SetStatus(text string) {
	v.Status.SetText(text)
}

// Save stores the working pair and reports the outcome.
func (v *MainView) Save() {
	rec, ok, err := v.Controller.Save()
	switch {
	case err != nil:
		log.Printf("[UI] Save failed: %v", err)
		dialog.ShowError(err, v.Window)
	case !ok:
		v.SetStatus("Draw two rectangles before saving")
	default:
		v.SetStatus(fmt.Sprintf("Saved measurement: %s px", geometry.FormatDistance(rec.Distance)))
	}
}

// Delete removes a saved measurement.
func (v *MainView) Delete(id string) {
	if err := v.Controller.Delete(id); err != nil {
		log.Printf("[UI] Delete failed: %v", err)
		dialog.ShowError(err, v.Window)
		return
	}
	v.SetStatus("Measurement deleted")
}

func (v *MainView) confirmClearRecords() {
	dialog.ShowConfirm("Clear measurements", "Delete every saved measurement?", func(ok bool) {
		if !ok {
			return
		}
		if err := v.Controller.ClearAll(); err != nil {
			dialog.ShowError(err, v.Window)
			return
		}
		v.SetStatus("All measurements deleted")
	}, v.Window)
}

func (v *MainView) updateActions() {
	v.Toolbar.SetState(v.Surface.CanUndo(), v.Surface.CanRedo(), v.Controller.CanSave())
}

func (v *MainView) updateDistance(set state.RectangleSet) {
	d, ok := set.Distance()
	switch {
	case ok:
		v.Toolbar.Distance.SetText("Distance: " + geometry.FormatDistance(d) + " px")
	case v.Surface.ReadOnly():
		v.Toolbar.Distance.SetText("")
	default:
		v.Toolbar.Distance.SetText(fmt.Sprintf("Draw %d more rectangle(s)", state.MaxRectangles-len(set)))
	}
	v.updateActions()
}

// addShortcuts binds Shortcut+Z to undo and Shortcut+Shift+Z to redo.
func (v *MainView) addShortcuts() {
	handle := func(s fyne.Shortcut) {
		cs, ok := s.(*desktop.CustomShortcut)
		if !ok {
			return
		}
		a := state.ShortcutAction(string(cs.KeyName),
			cs.Modifier&fyne.KeyModifierShortcutDefault != 0,
			cs.Modifier&fyne.KeyModifierShift != 0)
		v.Surface.Apply(a)
	}
	for _, mod := range []fyne.KeyModifier{
		fyne.KeyModifierShortcutDefault,
		fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
	} {
		v.Window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod}, handle)
	}
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(a fyne.App, opts Options) error {
	w := a.NewWindow("LocalMeasure")
	w.Resize(fyne.NewSize(1024, 768))
	v := NewMainView(w, opts.Config, opts.Store)

	if opts.WatchPath != "" {
		watcher, err := kv.Watch(opts.WatchPath, watchDebounce, func() {
			fyne.Do(v.Controller.Reload)
		})
		if err != nil {
			log.Printf("[UI] File watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if opts.Config.FeedEnabled {
		stop := startFeed(v, opts)
		defer stop()
	}

	w.ShowAndRun()
	return nil
}

// startFeed serves the record log to LAN viewers while the window is open.
func startFeed(v *MainView, opts Options) func() {
	port := opts.Config.FeedPort
	hub := feed.NewHub(opts.Store)
	v.Controller.Subscribe(hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := feed.Serve(ctx, port, hub); err != nil {
			log.Printf("[FEED] %v", err)
			fyne.Do(func() { v.SetStatus("Record feed stopped: " + err.Error()) })
		}
	}()
	v.SetStatus("Sharing measurements at " + feed.ShareURL(port))

	var stopAdvertising func()
	if opts.Config.Advertise {
		server, err := feed.Advertise(port)
		if err != nil {
			log.Printf("[MDNS] %v", err)
		} else {
			stopAdvertising = func() {
				if err := server.Shutdown(); err != nil {
					log.Printf("[MDNS] Shutdown: %v", err)
				}
			}
		}
	}

	return func() {
		if stopAdvertising != nil {
			stopAdvertising()
		}
		cancel()
		<-done
	}
}
