//go:build !cgo

package synth

import "errors"

// PortAudioOutput requires cgo; this build has cgo disabled, so the backend
// is present but reports an error when started.
type PortAudioOutput struct {
	engine *Engine
}

func NewPortAudioOutput(e *Engine) *PortAudioOutput {
	return &PortAudioOutput{engine: e}
}

func (o *PortAudioOutput) Start() error {
	return errors.New("portaudio backend requires cgo")
}

func (o *PortAudioOutput) Stop() error {
	return nil
}
