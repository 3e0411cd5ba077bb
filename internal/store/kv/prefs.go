package kv

import (
	"fyne.io/fyne/v2"
)

// Preferences stores values in the Fyne application preferences, the
// desktop counterpart of browser local storage. An empty string reads as a
// missing key.
type Preferences struct {
	prefs fyne.Preferences
}

func NewPreferences(p fyne.Preferences) *Preferences {
	return &Preferences{prefs: p}
}

func (p *Preferences) Get(key string) (string, bool, error) {
	v := p.prefs.String(key)
	return v, v != "", nil
}

func (p *Preferences) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}

func (p *Preferences) Delete(key string) error {
	p.prefs.RemoveValue(key)
	return nil
}
