package synth

import "math"

// combDelays are mutually prime tap lengths in seconds, short enough to read
// as a room rather than an echo.
var combDelays = [4]float64{.0297, .0371, .0411, .0437}

const combDecay = 0.75

// Reverb is a small comb-bank reverb. Every graph constructs one, but it
// stays dormant (wet mix 0) until SetMix raises it.
type Reverb struct {
	mix    float64
	combs  [4]comb
	filter dcFilter
}

func (r *Reverb) InitAudio(p Params) {
	for i := range r.combs {
		r.combs[i] = comb{
			buf:   make([]float64, int(combDelays[i]*p.SampleRate)),
			decay: combDecay,
		}
	}
	r.filter.InitAudio(p)
	r.mix = 0
}

// SetMix clamps to [0, 0.95]; fully wet output is never useful here.
func (r *Reverb) SetMix(m float64) {
	r.mix = clamp(m, 0, 0.95)
}

func (r *Reverb) Mix() float64 { return r.mix }

func (r *Reverb) Process(x float64) float64 {
	if r.mix == 0 {
		return x
	}
	wet := 0.0
	for i := range r.combs {
		wet += r.combs[i].step(x)
	}
	wet = r.filter.Filter(wet / float64(len(r.combs)))
	return x*(1-r.mix) + wet*r.mix
}

type comb struct {
	buf   []float64
	i     int
	decay float64
}

func (c *comb) step(x float64) float64 {
	y := c.buf[c.i]
	c.buf[c.i] = x + y*c.decay
	c.i = (c.i + 1) % len(c.buf)
	return y
}

// dcFilter is a one-pole highpass at 10 Hz that keeps comb feedback from
// accumulating a DC offset.
type dcFilter struct {
	a, x, y float64
}

func (f *dcFilter) InitAudio(p Params) {
	rc := 1 / (2 * math.Pi * 10)
	f.a = rc / (rc + 1/p.SampleRate)
}

func (f *dcFilter) Filter(x float64) float64 {
	f.y = f.a * (f.y + x - f.x)
	f.x = x
	return f.y
}
