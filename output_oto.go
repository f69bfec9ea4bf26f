//go:build cgo || windows || darwin || js

package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoOutput renders the engine through oto, which pulls interleaved
// float32 LE frames from Read on its own schedule.
type OtoOutput struct {
	engine      *Engine
	ctx         *oto.Context
	player      *oto.Player
	left, right []float32
}

func NewOtoOutput(e *Engine) (*OtoOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   int(e.Params().SampleRate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	<-ready
	o := &OtoOutput{engine: e, ctx: ctx}
	o.player = ctx.NewPlayer(o)
	return o, nil
}

func (o *OtoOutput) Read(p []byte) (int, error) {
	const frameBytes = 8 // 2 channels x 4 bytes
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	if cap(o.left) < frames {
		o.left = make([]float32, frames)
		o.right = make([]float32, frames)
	}
	left, right := o.left[:frames], o.right[:frames]
	o.engine.RenderPlanar(left, right)
	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint32(p[frameBytes*i:], math.Float32bits(left[i]))
		binary.LittleEndian.PutUint32(p[frameBytes*i+4:], math.Float32bits(right[i]))
	}
	return frames * frameBytes, nil
}

func (o *OtoOutput) Start() error {
	if o.player == nil {
		return fmt.Errorf("oto output already closed")
	}
	o.player.Play()
	return nil
}

func (o *OtoOutput) Stop() error {
	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	return err
}
