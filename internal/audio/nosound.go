//go:build nosound

package audio

import "github.com/gopxl/beep"

func openSpeaker(beep.Streamer) error {
	return ErrNoSound
}

func closeSpeaker() {}

func withSpeakerLock(fn func()) {
	fn()
}
