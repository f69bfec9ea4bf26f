//go:build cgo

package synth

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PortAudioOutput renders the engine into the default stereo device via a
// non-interleaved portaudio callback.
type PortAudioOutput struct {
	engine *Engine
	stream *portaudio.Stream
}

func NewPortAudioOutput(e *Engine) *PortAudioOutput {
	return &PortAudioOutput{engine: e}
}

func (o *PortAudioOutput) Start() error {
	if o.stream != nil {
		return nil
	}
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(
		0, 2, o.engine.Params().SampleRate, portaudio.FramesPerBufferUnspecified, o.callback)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("can't open default stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("can't start stream: %w", err)
	}
	o.stream = stream
	return nil
}

func (o *PortAudioOutput) callback(out [][]float32) {
	o.engine.RenderPlanar(out[0], out[1])
}

func (o *PortAudioOutput) Stop() error {
	if o.stream == nil {
		return nil
	}
	err := o.stream.Close()
	o.stream = nil
	// ignore Terminate error; the device is gone either way
	portaudio.Terminate()
	return err
}
