package synth

import (
	"sync"
	"time"
)

// PatternSteps is one bar of sixteenth notes.
const PatternSteps = 16

// Pattern marks which steps fire which drum.
type Pattern map[DrumType][PatternSteps]bool

// Sequencer fires drum triggers on a fixed sixteenth-note period, 30/bpm
// seconds. Ticks are fire-and-forget: a busy host drops steps rather than
// queueing them, so timing is steady but not sample-accurate.
type Sequencer struct {
	trigger func(DrumType)

	mu      sync.Mutex
	bpm     float64
	pattern Pattern
	step    int
	ticker  *time.Ticker
	done    chan struct{}
}

func NewSequencer(trigger func(DrumType), bpm float64) *Sequencer {
	s := &Sequencer{trigger: trigger}
	s.setBPM(bpm)
	return s
}

func (s *Sequencer) SetPattern(p Pattern) {
	s.mu.Lock()
	s.pattern = p
	s.mu.Unlock()
}

// SetBPM retimes the sequencer; takes effect on the next tick if running.
func (s *Sequencer) SetBPM(bpm float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setBPM(bpm)
	if s.ticker != nil {
		s.ticker.Reset(s.period())
	}
}

func (s *Sequencer) setBPM(bpm float64) {
	if bpm <= 0 {
		bpm = 120
	}
	s.bpm = bpm
}

// period is the sixteenth-note interval: 30/bpm seconds.
func (s *Sequencer) period() time.Duration {
	return time.Duration(30 / s.bpm * float64(time.Second))
}

// Start launches the tick loop. Starting a running sequencer is a no-op.
func (s *Sequencer) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}
	s.ticker = time.NewTicker(s.period())
	s.done = make(chan struct{})
	go s.run(s.ticker, s.done)
}

// Stop halts the tick loop and rewinds to step zero. Idempotent.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return
	}
	close(s.done)
	s.ticker.Stop()
	s.done = nil
	s.ticker = nil
	s.step = 0
}

func (s *Sequencer) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick fires the current step's triggers and advances. Triggers run outside
// the lock so a slow engine can't stall retiming.
func (s *Sequencer) tick() {
	s.mu.Lock()
	step := s.step
	s.step = (s.step + 1) % PatternSteps
	var fire []DrumType
	for d, row := range s.pattern {
		if row[step] {
			fire = append(fire, d)
		}
	}
	s.mu.Unlock()
	for _, d := range fire {
		s.trigger(d)
	}
}
