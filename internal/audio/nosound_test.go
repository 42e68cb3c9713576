//go:build nosound

package audio

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestInitWithoutSoundSupport(t *testing.T) {
	p := NewPlayer(nil)

	if err := p.Init(); !errors.Is(err, ErrNoSound) {
		t.Fatalf("Init() = %v, expected ErrNoSound", err)
	}

	p.HandleStep(core.StepResult{Events: []core.EventKind{core.EventReset}})
	p.Close()
	if p.mixer.Len() != 0 {
		t.Errorf("mixer should stay empty without a speaker, got %d streamers", p.mixer.Len())
	}
}
