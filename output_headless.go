package synth

import "time"

// HeadlessOutput renders the engine in roughly real time to nowhere. It
// keeps the graph, tap and sequencer behaving normally on machines with no
// audio device, and in tests.
type HeadlessOutput struct {
	engine *Engine
	done   chan struct{}
}

func NewHeadlessOutput(e *Engine) *HeadlessOutput {
	return &HeadlessOutput{engine: e}
}

func (o *HeadlessOutput) Start() error {
	if o.done != nil {
		return nil
	}
	o.done = make(chan struct{})
	go o.run(o.done)
	return nil
}

func (o *HeadlessOutput) run(done chan struct{}) {
	const blockDur = 10 * time.Millisecond
	block := int(o.engine.Params().SampleRate * blockDur.Seconds())
	left := make([]float32, block)
	right := make([]float32, block)
	ticker := time.NewTicker(blockDur)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			o.engine.RenderPlanar(left, right)
		}
	}
}

func (o *HeadlessOutput) Stop() error {
	if o.done == nil {
		return nil
	}
	close(o.done)
	o.done = nil
	return nil
}
