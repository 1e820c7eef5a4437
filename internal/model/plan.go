package model

import "fmt"

// DownloadMode selects whether acquisition targets audio only or full video
type DownloadMode string

const (
	// ModeAudio downloads the audio stream only (default; transcription
	// needs nothing else)
	ModeAudio DownloadMode = "audio"

	// ModeVideo downloads the full video
	ModeVideo DownloadMode = "video"
)

// AudioFormat is the requested output codec/container for audio downloads
type AudioFormat string

const (
	// FormatBest keeps whatever the source serves, no re-encode
	FormatBest AudioFormat = "best"

	FormatMP3    AudioFormat = "mp3"
	FormatM4A    AudioFormat = "m4a"
	FormatWAV    AudioFormat = "wav"
	FormatOpus   AudioFormat = "opus"
	FormatVorbis AudioFormat = "vorbis"
	FormatFLAC   AudioFormat = "flac"
)

var audioFormats = map[AudioFormat]bool{
	FormatBest:   true,
	FormatMP3:    true,
	FormatM4A:    true,
	FormatWAV:    true,
	FormatOpus:   true,
	FormatVorbis: true,
	FormatFLAC:   true,
}

// ParseDownloadMode validates a user-supplied download mode string
func ParseDownloadMode(s string) (DownloadMode, error) {
	switch DownloadMode(s) {
	case ModeAudio:
		return ModeAudio, nil
	case ModeVideo:
		return ModeVideo, nil
	}
	return "", fmt.Errorf("invalid download mode %q: must be %q or %q", s, ModeAudio, ModeVideo)
}

// ParseAudioFormat validates a user-supplied audio format string
func ParseAudioFormat(s string) (AudioFormat, error) {
	f := AudioFormat(s)
	if !audioFormats[f] {
		return "", fmt.Errorf("invalid audio format %q: must be one of best, mp3, m4a, wav, opus, vorbis, flac", s)
	}
	return f, nil
}

// AcquisitionPlan is a concrete download specification. Invariant: a video
// plan never carries an audio format name (the planner rejects that
// combination before a plan is built).
type AcquisitionPlan struct {
	// Entry is the chosen probed entry, or nil when the URL itself is the
	// sole stream and there was nothing to choose among
	Entry *ProbedEntry

	Mode        DownloadMode
	AudioFormat AudioFormat

	// CookiesFromBrowser names a browser whose session cookies authenticate
	// the download; carried opaquely for the downloader
	CookiesFromBrowser string
}

// DownloadResult is one local media file produced by the downloader. The
// caller owns the file; the downloader has no further claim on it.
type DownloadResult struct {
	Path string
	Size int64
	Mode DownloadMode
}
