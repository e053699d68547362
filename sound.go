package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/echoknight/assets"
	"github.com/milk9111/echoknight/ecs"
)

var cues = map[ecs.EventKind]assets.Cue{
	ecs.EventWaveFired:       {Freq: 520, EndFreq: 880, Duration: 120 * time.Millisecond, Volume: 0.3},
	ecs.EventWaveAmplified:   {Freq: 880, EndFreq: 1320, Duration: 90 * time.Millisecond, Volume: 0.25},
	ecs.EventWaveAbsorbed:    {Freq: 300, EndFreq: 120, Duration: 120 * time.Millisecond, Volume: 0.25},
	ecs.EventEnemyHit:        {Freq: 220, Duration: 60 * time.Millisecond, Volume: 0.3, Square: true},
	ecs.EventEnemyKilled:     {Freq: 330, EndFreq: 110, Duration: 200 * time.Millisecond, Volume: 0.35, Square: true},
	ecs.EventPlayerHurt:      {Freq: 140, EndFreq: 90, Duration: 90 * time.Millisecond, Volume: 0.3, Square: true},
	ecs.EventPickupCollected: {Freq: 660, EndFreq: 990, Duration: 100 * time.Millisecond, Volume: 0.3},
	ecs.EventKeyCollected:    {Freq: 990, EndFreq: 1480, Duration: 180 * time.Millisecond, Volume: 0.3},
	ecs.EventLevelAdvanced:   {Freq: 440, EndFreq: 1760, Duration: 400 * time.Millisecond, Volume: 0.3},
	ecs.EventLevelRestarted:  {Freq: 440, EndFreq: 110, Duration: 400 * time.Millisecond, Volume: 0.3},
	ecs.EventGameWon:         {Freq: 523, EndFreq: 1046, Duration: 700 * time.Millisecond, Volume: 0.35},
}

// Sounds plays one cue per event kind. Contact drain fires PlayerHurt every
// tick, so a cue that is still playing is not restarted.
type Sounds struct {
	players map[ecs.EventKind]*audio.Player
	muted   bool
}

func NewSounds(muted bool) *Sounds {
	s := &Sounds{players: map[ecs.EventKind]*audio.Player{}, muted: muted}
	if muted {
		return s
	}
	for kind, cue := range cues {
		s.players[kind] = assets.NewCuePlayer(cue)
	}
	return s
}

func (s *Sounds) Play(events []ecs.Event) {
	if s == nil || s.muted {
		return
	}
	for _, evt := range events {
		p, ok := s.players[evt.Kind]
		if !ok || p.IsPlaying() {
			continue
		}
		_ = p.Rewind()
		p.Play()
	}
}
