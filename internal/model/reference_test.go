package model

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw      string
		expected ReferenceKind
	}{
		{"https://www.youtube.com/watch?v=abc123", KindURL},
		{"http://example.com/stream.m3u8", KindURL},
		{"https://example.com", KindURL},
		{"video.mp4", KindLocalPath},
		{"./video.mp4", KindLocalPath},
		{"/home/user/talk recording.mkv", KindLocalPath},
		{"C:\\videos\\talk.mp4", KindLocalPath},
		{"ftp://example.com/video.mp4", KindLocalPath},
		{"file:///tmp/video.mp4", KindLocalPath},
		{"http://", KindLocalPath}, // no host, not a usable URL
		{"https:// example.com", KindLocalPath},
		{"", KindLocalPath},
	}

	for _, test := range tests {
		ref := Classify(test.raw)
		if ref.Kind != test.expected {
			t.Errorf("Classify(%q).Kind = %s, expected %s", test.raw, ref.Kind, test.expected)
		}
		if ref.Raw != test.raw {
			t.Errorf("Classify(%q).Raw = %q, expected the input unchanged", test.raw, ref.Raw)
		}
	}
}

func TestReference_IsURL(t *testing.T) {
	if !Classify("https://example.com/v").IsURL() {
		t.Error("Expected https reference to be a URL")
	}
	if Classify("notes.wav").IsURL() {
		t.Error("Expected plain filename not to be a URL")
	}
}
