package transcribe

import (
	"bufio"
	"fmt"
	"os"
)

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// FormatTimestamp renders seconds as MM:SS, or HH:MM:SS past one hour
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / SecondsPerHour
	m := (total % SecondsPerHour) / SecondsPerMinute
	s := total % SecondsPerMinute
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// WriteMarkdown writes the transcript to outputPath: a header naming the
// source reference, then one `**[MM:SS]** text` line per segment.
func WriteMarkdown(outputPath, source string, segments []Segment) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create transcript file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Transcription\n\n")
	fmt.Fprintf(w, "**Source:** `%s`\n\n", source)
	fmt.Fprintf(w, "---\n\n")

	for _, seg := range segments {
		fmt.Fprintf(w, "**[%s]** %s\n\n", FormatTimestamp(seg.Start), seg.Text)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
