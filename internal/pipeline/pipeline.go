// Package pipeline orchestrates one reference end to end: classification,
// probing, selection, planning, download, transcription, and markdown
// output. Batch runs process references sequentially and independently; one
// failure never aborts the rest.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xscribe/xscribe/internal/download"
	"github.com/xscribe/xscribe/internal/model"
	"github.com/xscribe/xscribe/internal/platform"
	"github.com/xscribe/xscribe/internal/resolve"
	"github.com/xscribe/xscribe/internal/transcribe"
)

// Options are the per-invocation knobs shared by every reference in a batch
type Options struct {
	Mode               model.DownloadMode
	AudioFormat        model.AudioFormat
	ListVideos         bool
	VideoIndex         int
	CookiesFromBrowser string

	// OutputPath overrides the transcript location; only valid for a
	// single-reference run (the CLI enforces that)
	OutputPath string

	// KeepMedia leaves downloaded media in the work directory
	KeepMedia bool

	Model    string
	Language string
}

// RunResult records the outcome for one reference
type RunResult struct {
	Reference  model.Reference
	Status     model.RunStatus
	OutputPath string
	Err        error
}

// Pipeline wires the acquisition and transcription collaborators together
type Pipeline struct {
	prober      download.Prober
	downloader  download.Downloader
	transcriber transcribe.Transcriber
	logger      zerolog.Logger
	stdout      io.Writer
	workRoot    string
}

// New creates a pipeline. stdout receives user-facing output (listings,
// batch progress); diagnostics go to the logger.
func New(prober download.Prober, downloader download.Downloader, transcriber transcribe.Transcriber, logger zerolog.Logger, stdout io.Writer) *Pipeline {
	return &Pipeline{
		prober:      prober,
		downloader:  downloader,
		transcriber: transcriber,
		logger:      logger.With().Str("component", "pipeline").Logger(),
		stdout:      stdout,
		workRoot:    os.TempDir(),
	}
}

// SetWorkRoot overrides where per-run work directories are created
func (p *Pipeline) SetWorkRoot(dir string) {
	p.workRoot = dir
}

// Run processes each reference in order. Failures are collected, not
// propagated: the slice always has one result per input reference.
func (p *Pipeline) Run(ctx context.Context, refs []string, opts Options) []RunResult {
	results := make([]RunResult, 0, len(refs))
	for i, raw := range refs {
		if len(refs) > 1 {
			fmt.Fprintf(p.stdout, "\n[%d/%d] %s\n", i+1, len(refs), raw)
		}
		results = append(results, p.runOne(ctx, raw, opts))

		if ctx.Err() != nil {
			// Interrupted: mark the remaining references without touching them
			for _, rest := range refs[i+1:] {
				results = append(results, RunResult{
					Reference: model.Classify(rest),
					Status:    model.StatusError,
					Err:       ctx.Err(),
				})
			}
			break
		}
	}
	return results
}

// runOne takes a single reference through the whole pipeline
func (p *Pipeline) runOne(ctx context.Context, raw string, opts Options) RunResult {
	ref := model.Classify(raw)
	result := RunResult{Reference: ref, Status: model.StatusPending}

	logger := p.logger.With().Str("ref", raw).Logger()

	mediaPath, listed, cleanup, err := p.acquire(ctx, ref, opts, logger, &result)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		result.Status = model.StatusError
		result.Err = err
		return result
	}
	if listed {
		result.Status = model.StatusListed
		return result
	}

	if duration, derr := platform.MediaDuration(ctx, mediaPath); derr == nil {
		logger.Info().Float64("duration_sec", duration).Msg("media ready")
	}

	result.Status = model.StatusTranscribing
	segments, err := p.transcriber.Transcribe(ctx, transcribe.Request{
		FilePath: mediaPath,
		Model:    opts.Model,
		Language: opts.Language,
	})
	if err != nil {
		result.Status = model.StatusError
		result.Err = err
		return result
	}
	if len(segments) == 0 {
		result.Status = model.StatusError
		result.Err = fmt.Errorf("no speech detected in: %s", raw)
		return result
	}

	outputPath := transcriptPath(ref, opts)
	if err := transcribe.WriteMarkdown(outputPath, raw, segments); err != nil {
		result.Status = model.StatusError
		result.Err = err
		return result
	}

	logger.Info().Str("output", outputPath).Msg("transcript written")
	fmt.Fprintf(p.stdout, "Saved to: %s\n", outputPath)

	result.Status = model.StatusCompleted
	result.OutputPath = outputPath
	return result
}

// acquire turns a reference into a local media file. For listing runs it
// prints the entries and reports listed=true with no media path.
func (p *Pipeline) acquire(ctx context.Context, ref model.Reference, opts Options, logger zerolog.Logger, result *RunResult) (mediaPath string, listed bool, cleanup func(), err error) {
	if !ref.IsURL() {
		abs, absErr := filepath.Abs(ref.Raw)
		if absErr != nil {
			return "", false, nil, absErr
		}
		if _, statErr := os.Stat(abs); statErr != nil {
			return "", false, nil, fmt.Errorf("file not found: %s", abs)
		}
		return abs, false, nil, nil
	}

	result.Status = model.StatusProbing
	logger.Debug().Msg("probing")
	report, err := p.prober.Probe(ctx, ref.Raw)
	if err != nil {
		return "", false, nil, err
	}

	var entry *model.ProbedEntry
	if report.Playlist {
		sel, selErr := resolve.Resolve(report.Entries, opts.ListVideos, opts.VideoIndex)
		if selErr != nil {
			return "", false, nil, selErr
		}
		if sel.Outcome == resolve.OutcomeListed {
			p.printListing(report.Title, sel.Entries)
			return "", true, nil, nil
		}
		entry = sel.Entry
	}

	plan, err := resolve.PlanAcquisition(entry, opts.Mode, opts.AudioFormat, opts.CookiesFromBrowser)
	if err != nil {
		return "", false, nil, err
	}

	workDir := filepath.Join(p.workRoot, "xscribe-"+uuid.NewString())
	if !opts.KeepMedia {
		cleanup = func() { os.RemoveAll(workDir) }
	}

	result.Status = model.StatusDownloading
	downloaded, err := p.downloader.Download(ctx, ref.Raw, plan, workDir)
	if err != nil {
		return "", false, cleanup, err
	}
	logger.Info().Str("path", downloaded.Path).Str("mode", string(downloaded.Mode)).Msg("media acquired")
	return downloaded.Path, false, cleanup, nil
}

// printListing writes the probed entries to stdout, 1-based, in probe order,
// under the page title when the probe reported one
func (p *Pipeline) printListing(title string, entries []model.ProbedEntry) {
	if title != "" {
		fmt.Fprintf(p.stdout, "%s\n", title)
	}
	for _, e := range entries {
		fmt.Fprintf(p.stdout, "%3d. %s [%s]\n", e.Index, e.Title, e.Duration)
	}
}

// transcriptPath decides where the markdown file goes: explicit override,
// else input stem for files, else a generic name for URLs, in the current
// directory
func transcriptPath(ref model.Reference, opts Options) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	if ref.IsURL() {
		return "transcription.md"
	}
	base := filepath.Base(ref.Raw)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".md"
}
