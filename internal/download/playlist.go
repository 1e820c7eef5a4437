package download

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	ytdlpv2 "github.com/ytget/ytdlp/v2"

	"github.com/xscribe/xscribe/internal/model"
)

// URL parameters and templates
const (
	PlaylistParam = "list"

	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// usesPlaylistFastPath reports whether rawURL will be probed through the
// playlist library instead of the yt-dlp binary. The library client cannot
// forward browser cookies, so a cookie-authenticated probe always takes the
// binary path.
func (s *Service) usesPlaylistFastPath(rawURL string) bool {
	return s.cookiesFromBrowser == "" && isYouTubePlaylistURL(rawURL)
}

// isYouTubePlaylistURL reports whether rawURL is a YouTube playlist page,
// which has a library fast path that avoids spawning the yt-dlp binary
func isYouTubePlaylistURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if host != "youtube.com" && host != "m.youtube.com" && host != "youtu.be" {
		return false
	}
	return u.Query().Get(PlaylistParam) != ""
}

// extractPlaylistID pulls the playlist ID out of a YouTube URL
func extractPlaylistID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get(PlaylistParam)
}

// probeYouTubePlaylist enumerates playlist items through the ytdlp library.
// Same contract as the binary probe: metadata only, 1-based indices in
// report order.
func (s *Service) probeYouTubePlaylist(ctx context.Context, rawURL string) (*model.ProbeReport, error) {
	playlistID := extractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, &model.ProbeError{URL: rawURL, Err: fmt.Errorf("could not extract playlist ID")}
	}

	s.logger.Debug().Str("playlist_id", playlistID).Msg("probing YouTube playlist")

	d := ytdlpv2.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, &model.ProbeError{URL: rawURL, Err: fmt.Errorf("failed to get playlist items: %w", err)}
	}

	entries := make([]model.ProbedEntry, 0, len(items))
	for i, it := range items {
		entries = append(entries, model.ProbedEntry{
			Index:    i + 1,
			ID:       it.VideoID,
			Title:    it.Title,
			Duration: DefaultDuration,
			URL:      fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return &model.ProbeReport{Playlist: true, Entries: entries}, nil
}
