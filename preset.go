package synth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Preset is one named binaural configuration, as edited by end users in the
// presets file.
type Preset struct {
	Name          string  `json:"name"`
	BaseFrequency float64 `json:"baseFrequency"`
	BeatFrequency float64 `json:"beatFrequency"`
	NoiseMix      float64 `json:"noiseMix"`
	Pan           float64 `json:"pan"`
	WaveShape     string  `json:"waveShape"`
	BPM           float64 `json:"bpm"`
}

type PresetFile struct {
	Presets []Preset `json:"presets"`
}

// Beat bands follow the usual brainwave-entrainment ranges.
const defaultPresets = `
{
	"presets": [
		{ "name": "delta", "baseFrequency": 200, "beatFrequency": 2.5, "noiseMix": 0.3, "pan": 0, "waveShape": "sine", "bpm": 60 },
		{ "name": "theta", "baseFrequency": 250, "beatFrequency": 6, "noiseMix": 0.2, "pan": 0, "waveShape": "sine", "bpm": 80 },
		{ "name": "alpha", "baseFrequency": 300, "beatFrequency": 10, "noiseMix": 0.1, "pan": 0, "waveShape": "sine", "bpm": 100 },
		{ "name": "beta", "baseFrequency": 350, "beatFrequency": 20, "noiseMix": 0, "pan": 0, "waveShape": "triangle", "bpm": 120 }
	]
}
`

// ReadPresets loads the presets file, creating it with defaults first if it
// does not exist.
func ReadPresets(path string) (*PresetFile, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(defaultPresets), 0644); err != nil {
			return nil, fmt.Errorf("can't write default presets: %w", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read presets: %w", err)
	}
	var f PresetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshalling presets: %w", err)
	}
	return &f, nil
}

func (f *PresetFile) Find(name string) (Preset, bool) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply pushes the preset into a live session, or starts one if none is
// running.
func (p Preset) Apply(e *Engine) error {
	shape, err := ParseWaveShape(p.WaveShape)
	if err != nil {
		return fmt.Errorf("preset %s: %w", p.Name, err)
	}
	if !e.Running() {
		e.Start(p.BaseFrequency, p.BeatFrequency, p.NoiseMix, p.Pan, shape)
		return nil
	}
	e.SetFrequencies(p.BaseFrequency, p.BeatFrequency)
	e.SetNoiseMix(p.NoiseMix)
	e.SetPan(p.Pan)
	e.SetWaveShape(shape)
	return nil
}
