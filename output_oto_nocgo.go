//go:build !cgo && !windows && !darwin && !js

package synth

import "errors"

// OtoOutput needs cgo on this platform (oto's unix driver binds ALSA via
// cgo); with cgo disabled the backend is present but cannot be created.
type OtoOutput struct {
	engine *Engine
}

func NewOtoOutput(e *Engine) (*OtoOutput, error) {
	return nil, errors.New("oto backend requires cgo on this platform")
}

func (o *OtoOutput) Start() error {
	return errors.New("oto backend requires cgo on this platform")
}

func (o *OtoOutput) Stop() error {
	return nil
}
