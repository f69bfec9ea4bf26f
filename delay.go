package synth

// FeedbackDelay is a fixed-length delay line with an adjustable feedback
// gain. At the default gain of zero the line keeps running but contributes
// nothing, so the output equals the input.
type FeedbackDelay struct {
	delay    float64
	feedback float64
	buf      []float64
	i        int
}

func NewFeedbackDelay(delay float64) *FeedbackDelay {
	return &FeedbackDelay{delay: delay}
}

func (d *FeedbackDelay) InitAudio(p Params) {
	d.buf = make([]float64, int(d.delay*p.SampleRate))
	d.i = 0
}

// SetFeedback clamps to [0, 0.95]; unity feedback would never decay.
func (d *FeedbackDelay) SetFeedback(g float64) {
	d.feedback = clamp(g, 0, 0.95)
}

func (d *FeedbackDelay) Feedback() float64 { return d.feedback }

func (d *FeedbackDelay) Delay(x float64) float64 {
	y := d.buf[d.i] * d.feedback
	d.buf[d.i] = x + y
	d.i = (d.i + 1) % len(d.buf)
	return x + y
}
