package transcribe

import "context"

// Segment is one timed span of recognized speech
type Segment struct {
	Start float64 // seconds from media start
	End   float64
	Text  string
}

// Request describes a transcription job
type Request struct {
	FilePath string // absolute path to the media file
	Model    string // model name (tiny, base, small, medium, large-v3) or model file path
	Language string // forced language code; empty means auto-detect
}

// Transcriber converts a local media file into timed segments
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) ([]Segment, error)

	// Name returns the engine name
	Name() string
}
