// Package config holds runtime settings shared by the GUI and the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"LocalMeasure/internal/geometry"
	"LocalMeasure/internal/state"
	"LocalMeasure/internal/store"

	"github.com/spf13/pflag"
)

// AppID identifies the Fyne application and its preferences file.
const AppID = "io.localmeasure.app"

// Backend names a key-value backend.
type Backend string

const (
	BackendFile        Backend = "file"
	BackendPreferences Backend = "preferences"
	BackendSQLite      Backend = "sqlite"
	BackendMemory      Backend = "memory"
)

type Config struct {
	Backend      Backend
	DataDir      string
	Key          string
	HistoryLimit int
	CanvasWidth  float64
	CanvasHeight float64

	FeedEnabled bool
	FeedPort    int
	Advertise   bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Backend:      BackendFile,
		DataDir:      defaultDataDir(),
		Key:          store.DefaultKey,
		HistoryLimit: state.DefaultHistoryLimit,
		CanvasWidth:  state.DefaultCanvasSize.Width,
		CanvasHeight: state.DefaultCanvasSize.Height,
		FeedPort:     8888,
		Advertise:    true,
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".localmeasure"
	}
	return filepath.Join(dir, "localmeasure")
}

// BindFlags registers every setting on fs, using c's values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar((*string)(&c.Backend), "backend", string(c.Backend), "storage backend: file, preferences, sqlite or memory")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory for the file and sqlite backends")
	fs.StringVar(&c.Key, "key", c.Key, "storage key holding the record list")
	fs.IntVar(&c.HistoryLimit, "history", c.HistoryLimit, "number of undo steps kept")
	fs.Float64Var(&c.CanvasWidth, "canvas-width", c.CanvasWidth, "drawing canvas width in pixels")
	fs.Float64Var(&c.CanvasHeight, "canvas-height", c.CanvasHeight, "drawing canvas height in pixels")
	fs.BoolVar(&c.FeedEnabled, "feed", c.FeedEnabled, "publish the record log on the local network")
	fs.IntVar(&c.FeedPort, "port", c.FeedPort, "record feed port")
	fs.BoolVar(&c.Advertise, "mdns", c.Advertise, "advertise the record feed over mDNS")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
		if c.DataDir == "" {
			return fmt.Errorf("backend %s needs a data directory", c.Backend)
		}
	case BackendPreferences, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Key == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("history must keep at least one step, got %d", c.HistoryLimit)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.CanvasWidth, c.CanvasHeight)
	}
	if c.FeedPort < 1 || c.FeedPort > 65535 {
		return fmt.Errorf("port %d out of range", c.FeedPort)
	}
	return nil
}

// StorePath is the file used by the file or sqlite backend.
func (c Config) StorePath() string {
	if c.Backend == BackendSQLite {
		return filepath.Join(c.DataDir, "records.db")
	}
	return filepath.Join(c.DataDir, "records.json")
}

// CanvasSize is the backing resolution of the drawing surface.
func (c Config) CanvasSize() geometry.Size {
	return geometry.Size{Width: c.CanvasWidth, Height: c.CanvasHeight}
}
