package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/xscribe/xscribe/internal/model"
	"github.com/xscribe/xscribe/internal/platform"
)

// Download format selectors passed to yt-dlp
const (
	AudioFormatSelector = "bestaudio/best"
	VideoFormatSelector = "bestvideo*+bestaudio/best"

	OutputTemplate = "%(title)s.%(ext)s"
)

// Service probes and downloads media through the yt-dlp binary
type Service struct {
	logger zerolog.Logger

	// cookiesFromBrowser also applies to probes: some sites gate metadata
	// behind the same auth wall as the payload
	cookiesFromBrowser string
}

// NewService creates a yt-dlp backed probe/download service
func NewService(logger zerolog.Logger, cookiesFromBrowser string) *Service {
	return &Service{
		logger:             logger.With().Str("component", "download").Logger(),
		cookiesFromBrowser: cookiesFromBrowser,
	}
}

// Probe enumerates media entries at url in metadata-only mode. No payload
// bytes are transferred. A single non-decomposable resource yields a report
// with Playlist=false and no entries.
func (s *Service) Probe(ctx context.Context, rawURL string) (*model.ProbeReport, error) {
	if s.usesPlaylistFastPath(rawURL) {
		return s.probeYouTubePlaylist(ctx, rawURL)
	}

	dl := ytdlp.New().
		DumpSingleJSON().
		SkipDownload().
		FlatPlaylist().
		NoProgress()

	if s.cookiesFromBrowser != "" {
		dl = dl.CookiesFromBrowser(s.cookiesFromBrowser)
	}

	s.logger.Debug().Str("url", rawURL).Msg("probing URL")

	result, err := dl.Run(ctx, rawURL)
	if err != nil {
		return nil, &model.ProbeError{URL: rawURL, Diagnostic: resultStderr(result), Err: err}
	}

	report, err := parseProbeOutput(result.Stdout)
	if err != nil {
		return nil, &model.ProbeError{URL: rawURL, Diagnostic: resultStderr(result), Err: err}
	}

	s.logger.Debug().
		Bool("playlist", report.Playlist).
		Int("entries", len(report.Entries)).
		Msg("probe complete")

	return report, nil
}

// Download runs yt-dlp once with arguments derived from plan and returns the
// produced file. Blocks until the child exits; cancelling ctx kills the
// child.
func (s *Service) Download(ctx context.Context, rawURL string, plan model.AcquisitionPlan, destDir string) (model.DownloadResult, error) {
	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		return model.DownloadResult{}, &model.DownloadError{URL: rawURL, Err: err}
	}

	dl := argsFromPlan(plan).apply(ytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		NoProgress().
		Output(filepath.Join(destDir, OutputTemplate)))

	s.logger.Info().
		Str("url", rawURL).
		Str("mode", string(plan.Mode)).
		Msg("starting download")

	result, err := dl.Run(ctx, rawURL)
	if err != nil {
		return model.DownloadResult{}, &model.DownloadError{URL: rawURL, Diagnostic: resultStderr(result), Err: err}
	}

	path := outputPathFromResult(result)
	if path == "" {
		// yt-dlp did not report a filename; fall back to scanning the work dir
		path, err = platform.FindDownloadedFile(destDir)
		if err != nil {
			return model.DownloadResult{}, &model.DownloadError{URL: rawURL, Diagnostic: resultStderr(result), Err: err}
		}
	}

	// Guard against silent partial downloads: success with an empty or
	// missing output file is still a failure
	info, err := os.Stat(path)
	if err != nil {
		return model.DownloadResult{}, &model.DownloadError{URL: rawURL, Err: fmt.Errorf("downloader reported success but output file is missing: %w", err)}
	}
	if info.Size() == 0 {
		return model.DownloadResult{}, &model.DownloadError{URL: rawURL, Err: fmt.Errorf("downloader reported success but output file %s is empty", path)}
	}

	s.logger.Info().Str("path", path).Int64("size", info.Size()).Msg("download complete")

	return model.DownloadResult{Path: path, Size: info.Size(), Mode: plan.Mode}, nil
}

// downloadArgs is the yt-dlp argument set a plan maps to
type downloadArgs struct {
	format             string
	extractAudio       bool
	audioFormat        string
	playlistItems      string
	noPlaylist         bool
	cookiesFromBrowser string
}

// argsFromPlan derives the yt-dlp arguments from an acquisition plan.
// Audio with the best format stays a passthrough: no extraction step, no
// re-encode. An entry on the plan is addressed by its 1-based probe index;
// without one the URL names a single stream and playlist expansion is off.
func argsFromPlan(plan model.AcquisitionPlan) downloadArgs {
	args := downloadArgs{cookiesFromBrowser: plan.CookiesFromBrowser}

	switch plan.Mode {
	case model.ModeVideo:
		args.format = VideoFormatSelector
	default:
		args.format = AudioFormatSelector
		if plan.AudioFormat != "" && plan.AudioFormat != model.FormatBest {
			args.extractAudio = true
			args.audioFormat = string(plan.AudioFormat)
		}
	}

	if plan.Entry != nil {
		args.playlistItems = strconv.Itoa(plan.Entry.Index)
	} else {
		args.noPlaylist = true
	}
	return args
}

// apply sets the derived arguments on a yt-dlp command
func (a downloadArgs) apply(dl *ytdlp.Command) *ytdlp.Command {
	dl = dl.Format(a.format)
	if a.extractAudio {
		dl = dl.ExtractAudio().AudioFormat(a.audioFormat)
	}
	if a.playlistItems != "" {
		dl = dl.PlaylistItems(a.playlistItems)
	}
	if a.noPlaylist {
		dl = dl.NoPlaylist()
	}
	if a.cookiesFromBrowser != "" {
		dl = dl.CookiesFromBrowser(a.cookiesFromBrowser)
	}
	return dl
}

// outputPathFromResult extracts the downloaded filename from yt-dlp's
// reported metadata
func outputPathFromResult(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return ""
	}
	if info[0].Filename != nil {
		return *info[0].Filename
	}
	return ""
}

// resultStderr returns the child's stderr when a result is available
func resultStderr(result *ytdlp.Result) string {
	if result == nil {
		return ""
	}
	return result.Stderr
}
