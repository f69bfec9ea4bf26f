package synth

import "math"

// expDecay is the e^(-t/tau) amplitude contour shared by the percussion
// synths: tau sets how quickly the hit dies away.
func expDecay(t, tau float64) float64 {
	return math.Exp(-t / tau)
}
