package cmd

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"LocalMeasure/internal/config"
	"LocalMeasure/internal/store"
	"LocalMeasure/internal/store/kv"
)

// backend is an opened record store plus whatever must be released after.
type backend struct {
	Store *store.Store
	// WatchPath is set for backends that live in a plain file.
	WatchPath string
	closer    func() error
}

func (b *backend) Close() {
	if b.closer == nil {
		return
	}
	if err := b.closer(); err != nil {
		log.Printf("[KV] Close: %v", err)
	}
}

// openBackend opens the store cfg selects. prefs is only called for the
// preferences backend.
func openBackend(cfg config.Config, prefs func() fyne.Preferences) (*backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return &backend{Store: store.New(kv.NewMemory(), cfg.Key)}, nil
	case config.BackendPreferences:
		return &backend{Store: store.New(kv.NewPreferences(prefs()), cfg.Key)}, nil
	case config.BackendSQLite:
		db, err := kv.OpenSQLite(cfg.StorePath())
		if err != nil {
			return nil, err
		}
		return &backend{Store: store.New(db, cfg.Key), closer: db.Close}, nil
	case config.BackendFile:
		f, err := kv.NewFile(cfg.StorePath())
		if err != nil {
			return nil, err
		}
		return &backend{Store: store.New(f, cfg.Key), WatchPath: f.Path()}, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// cliPreferences opens the application's preferences without a window.
func cliPreferences() fyne.Preferences {
	return app.NewWithID(config.AppID).Preferences()
}
