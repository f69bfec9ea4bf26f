package synth

import "fmt"

// Output drives an Engine into an audio device. Implementations pull
// samples on their own schedule; the engine is only ever rendered from one
// output at a time.
type Output interface {
	Start() error
	Stop() error
}

// NewOutput selects a backend by name: "portaudio", "oto" or "headless".
func NewOutput(name string, e *Engine) (Output, error) {
	switch name {
	case "portaudio":
		return NewPortAudioOutput(e), nil
	case "oto":
		return NewOtoOutput(e)
	case "headless":
		return NewHeadlessOutput(e), nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", name)
}
