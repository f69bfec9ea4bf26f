package synth

import "math/rand"

// noiseLoopSeconds is the length of the looping noise buffer per channel.
const noiseLoopSeconds = 2

// NoiseLoop plays a fixed buffer of uniform noise in [-1, 1] on repeat, with
// an independent buffer per stereo channel. The generator is injected so
// tests can seed it.
type NoiseLoop struct {
	rand        *rand.Rand
	left, right []float64
	i           int
}

func NewNoiseLoop(r *rand.Rand) *NoiseLoop {
	return &NoiseLoop{rand: r}
}

func (n *NoiseLoop) InitAudio(p Params) {
	size := int(noiseLoopSeconds * p.SampleRate)
	n.left = make([]float64, size)
	n.right = make([]float64, size)
	for i := 0; i < size; i++ {
		n.left[i] = 2*n.rand.Float64() - 1
		n.right[i] = 2*n.rand.Float64() - 1
	}
	n.i = 0
}

func (n *NoiseLoop) Sing() (l, r float64) {
	l = n.left[n.i]
	r = n.right[n.i]
	n.i = (n.i + 1) % len(n.left)
	return l, r
}
