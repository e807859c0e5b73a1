// Package alarm plays a warning tone while the dial's value sits past the
// redline. The tone streams continuously and is gated by a beep.Ctrl, so
// engaging and releasing it is just a paused flag flip under the speaker
// lock, with no streamer teardown between crossings.
package alarm

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Alarm struct {
	ctrl   *beep.Ctrl
	active bool
}

// New initializes the speaker and starts the (paused) tone at the given
// frequency in Hz.
func New(freq int) (*Alarm, error) {
	tone, err := generators.SinTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, err
	}

	ctrl := &beep.Ctrl{Streamer: tone, Paused: true}
	speaker.Play(ctrl)
	return &Alarm{ctrl: ctrl}, nil
}

// Set engages or releases the tone. Safe to call every frame; it only
// touches the speaker when the state actually changes.
func (a *Alarm) Set(active bool) {
	if a == nil || active == a.active {
		return
	}
	a.active = active
	speaker.Lock()
	a.ctrl.Paused = !active
	speaker.Unlock()
}

// Active reports whether the tone is currently engaged.
func (a *Alarm) Active() bool {
	return a != nil && a.active
}
