package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xscribe/xscribe/internal/platform"
)

// External tool constants
const (
	DefaultWhisperBinary = "whisper-cli"
	FFmpegCommand        = "ffmpeg"

	// whisper.cpp wants 16 kHz mono PCM
	WhisperSampleRate = "16000"
	WhisperChannels   = "1"
	WhisperAudioCodec = "pcm_s16le"

	ModelFilePrefix = "ggml-"
	ModelFileExt    = ".bin"
)

// WhisperCppEngine transcribes by invoking the whisper.cpp CLI
type WhisperCppEngine struct {
	binary   string
	modelDir string
	logger   zerolog.Logger
}

// NewWhisperCppEngine creates an engine around the whisper.cpp CLI. binary
// may be empty to use the default name from PATH; modelDir is where named
// models are looked up.
func NewWhisperCppEngine(binary, modelDir string, logger zerolog.Logger) *WhisperCppEngine {
	if binary == "" {
		binary = DefaultWhisperBinary
	}
	return &WhisperCppEngine{
		binary:   binary,
		modelDir: modelDir,
		logger:   logger.With().Str("component", "transcribe").Logger(),
	}
}

func (e *WhisperCppEngine) Name() string {
	return "whisper.cpp"
}

// Transcribe converts the media file to 16 kHz mono WAV, runs whisper-cli
// with JSON output, and parses the segments.
func (e *WhisperCppEngine) Transcribe(ctx context.Context, req Request) ([]Segment, error) {
	if _, err := exec.LookPath(e.binary); err != nil {
		return nil, fmt.Errorf("%s is not installed (%s): %w", e.binary, platform.InstallHint("whisper-cpp"), err)
	}

	modelPath, err := e.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	audioPath, err := extractAudio(ctx, req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}
	defer os.Remove(audioPath)

	outBase := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"--output-json",
		"--output-file", outBase,
		"--no-prints",
	}
	if req.Language != "" {
		args = append(args, "-l", req.Language)
	}

	e.logger.Info().Str("model", modelPath).Str("file", req.FilePath).Msg("starting transcription")

	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %w\n%s", e.binary, err, strings.TrimSpace(stderr.String()))
	}

	jsonPath := outBase + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read transcription output: %w", err)
	}

	segments, err := parseWhisperOutput(data)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int("segments", len(segments)).Msg("transcription complete")
	return segments, nil
}

// resolveModel turns a model name or path into a model file path. Paths are
// used as-is; names are looked up as ggml-<name>.bin under the model dir.
func (e *WhisperCppEngine) resolveModel(model string) (string, error) {
	if model == "" {
		model = "base"
	}
	if strings.ContainsAny(model, "/\\") || strings.HasSuffix(model, ModelFileExt) {
		if _, err := os.Stat(model); err != nil {
			return "", fmt.Errorf("model file not found: %s", model)
		}
		return model, nil
	}

	path := filepath.Join(e.modelDir, ModelFilePrefix+model+ModelFileExt)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("model %q not found at %s: run `xscribe setup -m %s` first", model, path, model)
	}
	return path, nil
}

// extractAudio converts a media file to WAV 16 kHz mono next to it in a temp
// file, the format whisper.cpp expects
func extractAudio(ctx context.Context, filePath string) (string, error) {
	if _, err := exec.LookPath(FFmpegCommand); err != nil {
		return "", fmt.Errorf("ffmpeg is not installed (%s): %w", platform.InstallHint("ffmpeg"), err)
	}

	out, err := os.CreateTemp("", "xscribe-audio-*.wav")
	if err != nil {
		return "", err
	}
	out.Close()

	cmd := exec.CommandContext(ctx, FFmpegCommand,
		"-y",
		"-i", filePath,
		"-ar", WhisperSampleRate,
		"-ac", WhisperChannels,
		"-c:a", WhisperAudioCodec,
		out.Name(),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("ffmpeg failed: %w\n%s", err, strings.TrimSpace(stderr.String()))
	}
	return out.Name(), nil
}

// whisperOutput mirrors whisper.cpp's JSON output file
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"` // milliseconds
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseWhisperOutput extracts timed segments from whisper.cpp JSON. Segments
// with empty text are dropped.
func parseWhisperOutput(data []byte) ([]Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse transcription output: %w", err)
	}

	segments := make([]Segment, 0, len(out.Transcription))
	for _, t := range out.Transcription {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: float64(t.Offsets.From) / 1000,
			End:   float64(t.Offsets.To) / 1000,
			Text:  text,
		})
	}
	return segments, nil
}
