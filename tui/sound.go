package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/chime-cli/chime/internal/apperr"
	"github.com/chime-cli/chime/internal/config"
)

var errInvalidSoundFormat = &apperr.Error{
	Message: "sound file must be in mp3, ogg, flac, or wav format",
}

// speakerRate is the fixed mixing rate; decoded streams are resampled to it
// so the speaker only needs to be initialized once.
const speakerRate = beep.SampleRate(44100)

// soundHandle tracks one fire-and-forget playback so its stream can be
// closed once the speaker has drained it.
type soundHandle struct {
	stream beep.StreamSeekCloser
	done   atomic.Bool
}

// soundPlayer owns the speaker and the set of in-flight completion sounds.
// play is fire-and-forget; drained handles are retired by sweep once per
// frame.
type soundPlayer struct {
	handles []*soundHandle
	enabled bool
}

// newSoundPlayer initializes the speaker. Failure leaves playback disabled
// but the app running.
func newSoundPlayer() *soundPlayer {
	err := speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	if err != nil {
		slog.Warn("audio device unavailable, continuing without sound",
			"error", err)

		return &soundPlayer{}
	}

	return &soundPlayer{enabled: true}
}

// play starts the completion sound without blocking. Decode and device
// errors are logged and swallowed.
func (p *soundPlayer) play(sound string) {
	if !p.enabled || sound == "" || sound == config.SoundOff {
		return
	}

	stream, format, err := decodeSound(sound)
	if err != nil {
		slog.Error("unable to play sound", "sound", sound, "error", err)
		return
	}

	h := &soundHandle{stream: stream}

	resampled := beep.Resample(4, format.SampleRate, speakerRate, stream)

	speaker.Play(beep.Seq(resampled, beep.Callback(func() {
		h.done.Store(true)
	})))

	p.handles = append(p.handles, h)
}

// sweep closes and drops every handle whose stream has been fully played.
// This is a cleanup pass, not a synchronization point.
func (p *soundPlayer) sweep() {
	kept := p.handles[:0]

	for _, h := range p.handles {
		if h.done.Load() {
			_ = h.stream.Close()
			continue
		}

		kept = append(kept, h)
	}

	p.handles = kept
}

// decodeSound opens and decodes the specified sound. A bare name is resolved
// in the sounds directory by trying each supported extension.
func decodeSound(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var format beep.Format

	path := sound
	if filepath.Ext(sound) == "" {
		resolved, err := resolveSoundName(sound)
		if err != nil {
			return nil, format, err
		}

		path = resolved
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	var stream beep.StreamSeekCloser

	switch filepath.Ext(path) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, format, err
	}

	return stream, format, nil
}

func resolveSoundName(name string) (string, error) {
	for _, ext := range []string{".ogg", ".mp3", ".flac", ".wav"} {
		path := filepath.Join(config.SoundsDirPath(), name+ext)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
	}

	return "", errInvalidSoundFormat.Wrap(os.ErrNotExist)
}
