package transcribe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

const whisperJSON = `{
	"transcription": [
		{"offsets": {"from": 0, "to": 4200}, "text": " Welcome everyone."},
		{"offsets": {"from": 4200, "to": 9800}, "text": "  Today we talk about pipelines. "},
		{"offsets": {"from": 9800, "to": 10000}, "text": "   "},
		{"offsets": {"from": 10000, "to": 12500}, "text": "Questions?"}
	]
}`

func TestParseWhisperOutput(t *testing.T) {
	segments, err := parseWhisperOutput([]byte(whisperJSON))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments (blank dropped), got %d", len(segments))
	}

	first := segments[0]
	if first.Start != 0 || first.End != 4.2 {
		t.Errorf("Unexpected first segment timing: %+v", first)
	}
	if first.Text != "Welcome everyone." {
		t.Errorf("Expected trimmed text, got %q", first.Text)
	}

	last := segments[2]
	if last.Start != 10 || last.Text != "Questions?" {
		t.Errorf("Unexpected last segment: %+v", last)
	}
}

func TestParseWhisperOutput_Malformed(t *testing.T) {
	if _, err := parseWhisperOutput([]byte("not json")); err == nil {
		t.Error("Expected error for malformed output")
	}
}

func TestResolveModel(t *testing.T) {
	modelDir := t.TempDir()
	modelPath := filepath.Join(modelDir, "ggml-base.bin")
	if err := os.WriteFile(modelPath, []byte("weights"), 0644); err != nil {
		t.Fatalf("Failed to write model file: %v", err)
	}

	engine := NewWhisperCppEngine("", modelDir, zerolog.Nop())

	// Named model resolves under the model dir
	got, err := engine.resolveModel("base")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != modelPath {
		t.Errorf("resolveModel(base) = %s, expected %s", got, modelPath)
	}

	// Empty model defaults to base
	got, err = engine.resolveModel("")
	if err != nil || got != modelPath {
		t.Errorf("resolveModel(\"\") = %s, %v, expected the base model", got, err)
	}

	// Explicit path is used as-is
	got, err = engine.resolveModel(modelPath)
	if err != nil || got != modelPath {
		t.Errorf("resolveModel(path) = %s, %v", got, err)
	}

	// Missing named model points at setup
	if _, err := engine.resolveModel("large-v3"); err == nil {
		t.Error("Expected error for a model that is not downloaded")
	}
}

func TestWhisperCppEngine_Name(t *testing.T) {
	engine := NewWhisperCppEngine("", "", zerolog.Nop())
	if engine.Name() != "whisper.cpp" {
		t.Errorf("Unexpected engine name %q", engine.Name())
	}
}
