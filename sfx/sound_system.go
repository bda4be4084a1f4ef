// Package sfx plays short synthesized sounds for game events
package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"dicewalk/components"
	"dicewalk/ecs"
	"dicewalk/systems"
)

const sampleRate = 44100

// Sound identifies one effect
type Sound int

const (
	SoundRoll Sound = iota
	SoundHit
	SoundDefeat
)

// SoundSystem listens to the event queue and plays a blip per roll, hit and
// defeat. It never consumes events.
type SoundSystem struct {
	audioContext *audio.Context
	sounds       map[Sound][]byte
	volume       float64
}

// NewSoundSystem creates the process wide audio context; call it once
func NewSoundSystem(volume float64) *SoundSystem {
	return &SoundSystem{
		audioContext: audio.NewContext(sampleRate),
		sounds: map[Sound][]byte{
			SoundRoll:   tone(220, 60*time.Millisecond),
			SoundHit:    tone(660, 90*time.Millisecond),
			SoundDefeat: tone(110, 300*time.Millisecond),
		},
		volume: volume,
	}
}

// Update implements ecs.System
func (s *SoundSystem) Update(world *ecs.World, dt float64) {
	if s.volume <= 0 {
		return
	}
	world.Events().Each(func(ev ecs.Event) bool {
		switch e := ev.(type) {
		case systems.MoveStartedEvent:
			if components.Player.Has(world, e.Entity) {
				s.Play(SoundRoll)
			}
		case systems.DamageDealtEvent:
			s.Play(SoundHit)
		case systems.DefeatedEvent:
			s.Play(SoundDefeat)
		}
		return false
	})
}

// Play starts a sound; overlapping sounds mix
func (s *SoundSystem) Play(sound Sound) {
	pcm, ok := s.sounds[sound]
	if !ok {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}

// SetVolume sets the volume (0.0 to 1.0); zero mutes
func (s *SoundSystem) SetVolume(volume float64) {
	s.volume = volume
}

// GetVolume returns the current volume setting
func (s *SoundSystem) GetVolume() float64 {
	return s.volume
}

// tone renders a decaying sine as 16 bit little endian stereo
func tone(freq float64, d time.Duration) []byte {
	n := int(d.Seconds() * sampleRate)
	out := make([]byte, n*4)
	for k := 0; k < n; k++ {
		t := float64(k) / sampleRate
		env := 1 - float64(k)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[k*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[k*4+2:], uint16(v))
	}
	return out
}
