package synth

// Panner applies stereo balance: pan in [-1, 1], unity at center, with the
// opposite channel attenuated toward the extremes. Both ears stay at full
// level at pan 0, which the binaural pair depends on.
type Panner struct {
	pan float64
}

func (p *Panner) Set(pan float64) {
	p.pan = clamp(pan, -1, 1)
}

func (p *Panner) Pan(l, r float64) (float64, float64) {
	if p.pan > 0 {
		l *= 1 - p.pan
	} else if p.pan < 0 {
		r *= 1 + p.pan
	}
	return l, r
}
