package model

import "testing"

func TestParseDownloadMode(t *testing.T) {
	tests := []struct {
		input    string
		expected DownloadMode
		wantErr  bool
	}{
		{"audio", ModeAudio, false},
		{"video", ModeVideo, false},
		{"", "", true},
		{"Audio", "", true},
		{"both", "", true},
	}

	for _, test := range tests {
		mode, err := ParseDownloadMode(test.input)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseDownloadMode(%q) expected error, got %q", test.input, mode)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDownloadMode(%q) unexpected error: %v", test.input, err)
		}
		if mode != test.expected {
			t.Errorf("ParseDownloadMode(%q) = %q, expected %q", test.input, mode, test.expected)
		}
	}
}

func TestParseAudioFormat(t *testing.T) {
	valid := []string{"best", "mp3", "m4a", "wav", "opus", "vorbis", "flac"}
	for _, input := range valid {
		format, err := ParseAudioFormat(input)
		if err != nil {
			t.Errorf("ParseAudioFormat(%q) unexpected error: %v", input, err)
		}
		if string(format) != input {
			t.Errorf("ParseAudioFormat(%q) = %q", input, format)
		}
	}

	invalid := []string{"", "aac", "MP3", "ogg"}
	for _, input := range invalid {
		if _, err := ParseAudioFormat(input); err == nil {
			t.Errorf("ParseAudioFormat(%q) expected error", input)
		}
	}
}
