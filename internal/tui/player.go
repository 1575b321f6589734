package tui

import (
	"sync"
	"time"
)

// player is the terminal stand-in for a media player. It implements
// service.Player; the license verifier stops it through StopPlayback.
type player struct {
	bus *bus

	mu        sync.Mutex
	playing   bool
	contentID string
	tokenID   string
	startedAt time.Time
}

func newPlayer(b *bus) *player {
	return &player{bus: b}
}

func (p *player) Play(contentID, tokenID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
	p.contentID = contentID
	p.tokenID = tokenID
	p.startedAt = time.Now()
}

// Stop ends playback at the user's request. It reports whether anything
// was playing.
func (p *player) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	was := p.playing
	p.playing = false
	return was
}

func (p *player) StopPlayback() {
	if p.Stop() {
		p.bus.send(playbackEndedMsg{})
	}
}

func (p *player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *player) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return 0
	}
	return time.Since(p.startedAt).Truncate(time.Second)
}

func (p *player) Now() (contentID, tokenID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contentID, p.tokenID
}
