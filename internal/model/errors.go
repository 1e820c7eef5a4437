package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMedia means a URL exposed an entry list with nothing in it
var ErrNoMedia = errors.New("no extractable media found at this URL")

// AmbiguousError means a URL exposed several videos and the user gave no way
// to pick one. Never resolved by silently taking the first entry.
type AmbiguousError struct {
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("found %d videos at this URL: re-run with --list-videos to see them, or --video-index N to pick one", e.Count)
}

// IndexOutOfRangeError means --video-index was outside the probed entry list
type IndexOutOfRangeError struct {
	Index int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("--video-index %d is out of range: valid range is 1..%d", e.Index, e.Max)
}

// IncompatibleOptionsError means the flag combination cannot be honored
type IncompatibleOptionsError struct {
	Mode        DownloadMode
	AudioFormat AudioFormat
}

func (e *IncompatibleOptionsError) Error() string {
	return fmt.Sprintf("--audio-format %s cannot be combined with --download-mode %s: format conversion applies to audio downloads only", e.AudioFormat, e.Mode)
}

// ProbeError wraps a failed metadata probe. Diagnostic reports the external
// tool's own output so site/auth errors reach the user verbatim.
type ProbeError struct {
	URL        string
	Diagnostic string
	Err        error
}

func (e *ProbeError) Error() string {
	msg := fmt.Sprintf("probing %s failed: %v", e.URL, e.Err)
	if d := strings.TrimSpace(e.Diagnostic); d != "" {
		msg += "\n" + d
	}
	return msg
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// DownloadError wraps a failed or unusable download
type DownloadError struct {
	URL        string
	Diagnostic string
	Err        error
}

func (e *DownloadError) Error() string {
	msg := fmt.Sprintf("downloading %s failed: %v", e.URL, e.Err)
	if d := strings.TrimSpace(e.Diagnostic); d != "" {
		msg += "\n" + d
	}
	return msg
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
