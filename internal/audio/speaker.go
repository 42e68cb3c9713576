//go:build !nosound

package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

func openSpeaker(s beep.Streamer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func closeSpeaker() {
	speaker.Close()
}

// withSpeakerLock runs fn while the speaker is not pulling samples.
func withSpeakerLock(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}
