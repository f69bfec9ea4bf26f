package synth

import "reflect"

// Params carries the sample rate shared by every unit in a running graph.
type Params struct {
	SampleRate float64
}

// DefaultSampleRate is used when an Engine is created with zero Params.
const DefaultSampleRate = 44100

func (p *Params) InitAudio(q Params) { *p = q }

// Initer is implemented by units that need the sample rate before use.
type Initer interface {
	InitAudio(Params)
}

// Init wires params into x and, recursively, into its exported fields and
// slice elements. A graph struct can therefore be initialized wholesale.
func Init(x interface{}, p Params) {
	if x, ok := x.(Initer); ok {
		x.InitAudio(p)
		return
	}

	initVal := func(v reflect.Value) {
		if v.CanAddr() && v.Kind() != reflect.Ptr && v.Kind() != reflect.Interface {
			v = v.Addr()
		}
		if v.CanInterface() {
			Init(v.Interface(), p)
		}
	}
	v := reflect.Indirect(reflect.ValueOf(x))
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			initVal(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			initVal(v.Index(i))
		}
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
