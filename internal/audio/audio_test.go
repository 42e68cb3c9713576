package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func drain(t *testing.T, c Cue) [][2]float64 {
	t.Helper()
	s := cueStreamer(c)
	if s == nil {
		t.Fatalf("no streamer for cue %v", c)
	}

	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func TestCueLength(t *testing.T) {
	tests := []struct {
		cue      Cue
		duration time.Duration
	}{
		{CueEat, 80 * time.Millisecond},
		{CueReset, 300 * time.Millisecond},
	}

	for _, tt := range tests {
		samples := drain(t, tt.cue)
		if want := sampleRate.N(tt.duration); len(samples) != want {
			t.Errorf("cue %v: %d samples, expected %d", tt.cue, len(samples), want)
		}
	}
}

func TestCueAmplitude(t *testing.T) {
	for _, c := range []Cue{CueEat, CueReset} {
		samples := drain(t, c)
		peak := 0.0
		for _, s := range samples {
			if s[0] != s[1] {
				t.Fatalf("cue %v: channels differ", c)
			}
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 || peak > cues[c].amplitude {
			t.Errorf("cue %v: peak %f outside (0, %f]", c, peak, cues[c].amplitude)
		}
	}
}

func TestCueFadesOut(t *testing.T) {
	samples := drain(t, CueReset)
	tail := samples[len(samples)-50:]
	for _, s := range tail {
		if math.Abs(s[0]) > 0.01 {
			t.Fatalf("tail sample %f should be near silent", s[0])
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if cueStreamer(Cue(99)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestPlayerBeforeInitIsSilent(t *testing.T) {
	p := NewPlayer(nil)

	p.HandleStep(core.StepResult{Events: []core.EventKind{core.EventAte, core.EventReset}})
	p.Play(CueEat)
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer should stay empty before Init, got %d streamers", p.mixer.Len())
	}
}
