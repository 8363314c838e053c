package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"caneat/game/types"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate       = beep.SampleRate(44100)
	resampleQuality  = 4
	speakerBufferDur = 100 * time.Millisecond
)

// ShouldPlay reports whether music should be audible.
func ShouldPlay(musicOn bool, status types.GameStatus) bool {
	return musicOn && status == types.StatusPlaying
}

// MusicPlayer loops one background track. Every failure is logged and
// swallowed; the game runs silently when no audio device is available.
type MusicPlayer struct {
	mu          sync.Mutex
	logger      *log.Logger
	initialized bool
	ctrl        *beep.Ctrl
	stream      beep.StreamSeekCloser
	ref         string
	playing     bool
}

func NewMusicPlayer(logger *log.Logger) *MusicPlayer {
	return &MusicPlayer{logger: logger}
}

// Initialize opens the speaker once.
func (mp *MusicPlayer) Initialize() error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDur)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	mp.initialized = true
	return nil
}

// Ref is the reference of the loaded (or last attempted) track.
func (mp *MusicPlayer) Ref() string {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.ref
}

// Load replaces the current track with mp3 data. The new track keeps the
// current play/pause state.
func (mp *MusicPlayer) Load(ref string, data []byte) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.ref = ref
	if !mp.initialized {
		return nil
	}

	stream, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode %s: %w", ref, err)
	}

	looped := beep.Loop(-1, stream)
	ctrl := &beep.Ctrl{
		Streamer: beep.Resample(resampleQuality, format.SampleRate, sampleRate, looped),
		Paused:   !mp.playing,
	}

	speaker.Clear()
	if mp.stream != nil {
		mp.stream.Close()
	}
	mp.stream = stream
	mp.ctrl = ctrl
	speaker.Play(ctrl)
	mp.logger.Debug("Music loaded", "ref", ref)
	return nil
}

// Sync pauses or resumes the track for the given settings and round status.
func (mp *MusicPlayer) Sync(musicOn bool, status types.GameStatus) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.playing = ShouldPlay(musicOn, status)
	if !mp.initialized || mp.ctrl == nil {
		return
	}
	speaker.Lock()
	mp.ctrl.Paused = !mp.playing
	speaker.Unlock()
}

// Playing reports the requested state, whether or not a device is present.
func (mp *MusicPlayer) Playing() bool {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.playing
}

// Cleanup stops playback and releases the decoder.
func (mp *MusicPlayer) Cleanup() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if !mp.initialized {
		return
	}
	speaker.Clear()
	if mp.stream != nil {
		mp.stream.Close()
		mp.stream = nil
	}
	mp.ctrl = nil
	mp.initialized = false
}
