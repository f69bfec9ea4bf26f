package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	synth "github.com/Antinowhere/sound-generator-of-doom"
)

func main() {
	presetsFile := flag.String("presets", "presets.json", "Path to presets, created with defaults if not found.")
	presetName := flag.String("preset", "alpha", "Preset to play.")
	backend := flag.String("backend", "portaudio", "Audio backend: portaudio, oto or headless.")
	drums := flag.Bool("drums", false, "Run the step sequencer.")
	bpm := flag.Float64("bpm", 0, "Override the preset tempo.")
	chord := flag.String("chord", "", "Hold a chord, e.g. 0,4,7.")
	octave := flag.Int("octave", 4, "Chord octave.")
	watch := flag.Bool("watch", true, "Apply preset file edits to the live session.")
	meter := flag.Bool("meter", true, "Print a level meter.")
	flag.Parse()

	file, err := synth.ReadPresets(*presetsFile)
	if err != nil {
		log.Fatalf("can't read presets: %v", err)
	}
	preset, ok := file.Find(*presetName)
	if !ok {
		log.Fatalf("no preset named %q in %s", *presetName, *presetsFile)
	}

	engine := synth.NewEngine(synth.Params{SampleRate: synth.DefaultSampleRate})
	out, err := synth.NewOutput(*backend, engine)
	if err != nil {
		log.Fatalf("can't create output: %v", err)
	}
	if err := out.Start(); err != nil {
		log.Fatalf("can't start output: %v", err)
	}
	defer out.Stop()

	if err := preset.Apply(engine); err != nil {
		log.Fatalf("can't apply preset: %v", err)
	}
	defer engine.Stop()

	tempo := preset.BPM
	if *bpm > 0 {
		tempo = *bpm
	}
	seq := synth.NewSequencer(engine.Trigger, tempo)
	seq.SetPattern(defaultPattern())
	if *drums {
		seq.Start()
		defer seq.Stop()
	}

	if *chord != "" {
		semitones, err := parseChord(*chord)
		if err != nil {
			log.Fatalf("bad -chord: %v", err)
		}
		engine.PlayChord(semitones, *octave, .8)
		defer engine.StopChord()
	}

	done := make(chan struct{})
	defer close(done)
	errs := make(chan error)
	presets := make(chan *synth.PresetFile)
	if *watch {
		if err := synth.WatchPresets(*presetsFile, presets, errs, done); err != nil {
			log.Fatalf("can't watch presets: %v", err)
		}
	}
	if *meter {
		go runMeter(engine.Analyzer(), done)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case f := <-presets:
			p, ok := f.Find(*presetName)
			if !ok {
				fmt.Fprintf(os.Stderr, "preset %q vanished from %s\n", *presetName, *presetsFile)
				continue
			}
			if err := p.Apply(engine); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			if p.BPM > 0 && *bpm == 0 {
				seq.SetBPM(p.BPM)
			}
		case err := <-errs:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		case <-signals:
			fmt.Println("\nexiting")
			return
		}
	}
}

// defaultPattern is a plain four-on-the-floor bar with eighth hats and a
// backbeat snare.
func defaultPattern() synth.Pattern {
	p := synth.Pattern{}
	var kick, snare, hihat [synth.PatternSteps]bool
	for i := 0; i < synth.PatternSteps; i++ {
		kick[i] = i%4 == 0
		snare[i] = i%8 == 4
		hihat[i] = i%2 == 0
	}
	p[synth.DrumKick] = kick
	p[synth.DrumSnare] = snare
	p[synth.DrumHihat] = hihat
	return p
}

func parseChord(s string) ([]int, error) {
	var semitones []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("semitone %q: %w", part, err)
		}
		semitones = append(semitones, n)
	}
	return semitones, nil
}

// runMeter polls the tap a few times a second and draws an RMS bar.
func runMeter(tap *synth.Analyzer, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			n := int(tap.RMS() * 60)
			if n > 60 {
				n = 60
			}
			fmt.Printf("\r[%-60s]", strings.Repeat("=", n))
		}
	}
}
