package download

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xscribe/xscribe/internal/model"
)

// Default values
const (
	DefaultDuration = "Unknown"
)

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// probeInfo mirrors the subset of yt-dlp's --dump-single-json output the
// probe cares about. A playlist-typed object carries Entries; anything else
// is a single video.
type probeInfo struct {
	Type           string        `json:"_type"`
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Duration       float64       `json:"duration"`
	DurationString string        `json:"duration_string"`
	URL            string        `json:"url"`
	WebpageURL     string        `json:"webpage_url"`
	Ext            string        `json:"ext"`
	Resolution     string        `json:"resolution"`
	Entries        []probeInfo   `json:"entries"`
	Formats        []probeFormat `json:"formats"`
}

type probeFormat struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	ACodec     string  `json:"acodec"`
	VCodec     string  `json:"vcodec"`
	TBR        float64 `json:"tbr"`
}

// parseProbeOutput turns yt-dlp JSON metadata into a ProbeReport. Entry
// indices are assigned here, 1-based, in the order yt-dlp reported them.
func parseProbeOutput(output string) (*model.ProbeReport, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, fmt.Errorf("empty probe output")
	}

	var info probeInfo
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		return nil, fmt.Errorf("failed to parse probe output: %w", err)
	}

	if !isPlaylistType(info.Type) {
		return &model.ProbeReport{Playlist: false, Title: info.Title}, nil
	}

	entries := make([]model.ProbedEntry, 0, len(info.Entries))
	for i, e := range info.Entries {
		entries = append(entries, model.ProbedEntry{
			Index:    i + 1,
			ID:       e.ID,
			Title:    entryTitle(e),
			Duration: entryDuration(e),
			URL:      entryURL(e),
			Formats:  formatDescriptors(e.Formats),
		})
	}

	return &model.ProbeReport{Playlist: true, Title: info.Title, Entries: entries}, nil
}

// isPlaylistType reports whether a _type marks a decomposable result.
// yt-dlp uses "playlist" for real playlists and "multi_video" for pages with
// several embedded players.
func isPlaylistType(t string) bool {
	return t == "playlist" || t == "multi_video"
}

func entryTitle(e probeInfo) string {
	if e.Title != "" {
		return e.Title
	}
	if e.ID != "" {
		return e.ID
	}
	return "(untitled)"
}

func entryDuration(e probeInfo) string {
	if e.DurationString != "" {
		return e.DurationString
	}
	if e.Duration > 0 {
		return formatDuration(int(e.Duration))
	}
	return DefaultDuration
}

func entryURL(e probeInfo) string {
	if e.URL != "" {
		return e.URL
	}
	return e.WebpageURL
}

// formatDescriptors compacts yt-dlp format records into short human-readable
// descriptors for the listing
func formatDescriptors(formats []probeFormat) []string {
	descriptors := make([]string, 0, len(formats))
	for _, f := range formats {
		parts := make([]string, 0, 3)
		if f.Ext != "" {
			parts = append(parts, f.Ext)
		}
		if f.Resolution != "" && f.Resolution != "audio only" {
			parts = append(parts, f.Resolution)
		} else if f.ACodec != "" && f.ACodec != "none" {
			parts = append(parts, f.ACodec)
		}
		if f.TBR > 0 {
			parts = append(parts, fmt.Sprintf("%.0fk", f.TBR))
		}
		if len(parts) > 0 {
			descriptors = append(descriptors, strings.Join(parts, " "))
		}
	}
	return descriptors
}

// formatDuration formats seconds into MM:SS, or HH:MM:SS past one hour
func formatDuration(seconds int) string {
	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
