// Package cli wires the cobra command surface: the root transcription
// command and the setup subcommand.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/xscribe/xscribe/internal/config"
	"github.com/xscribe/xscribe/internal/download"
	"github.com/xscribe/xscribe/internal/model"
	"github.com/xscribe/xscribe/internal/pipeline"
	"github.com/xscribe/xscribe/internal/transcribe"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "xscribe [flags] <file-or-url>...",
	Short: "Transcribe video/audio files and stream URLs to markdown with timestamps",
	Long: `xscribe takes local media files or video URLs and produces timestamped
markdown transcripts. URLs are downloaded through yt-dlp; pages exposing
several embedded videos must be disambiguated with --list-videos or
--video-index.`,
	Example: `  # Transcribe a local recording
  xscribe meeting.mp4

  # Transcribe a video URL (audio-only download, fastest)
  xscribe "https://www.youtube.com/watch?v=tAP1eZYEuKA"

  # See what a page with several embedded videos offers, then pick one
  xscribe --list-videos "https://example.com/press-conference"
  xscribe --video-index 2 "https://example.com/press-conference"`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.xscribe/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	rootCmd.Flags().String("download-mode", "", "what to download for URLs: audio or video (default: audio)")
	rootCmd.Flags().String("audio-format", "", "audio output format: best, mp3, m4a, wav, opus, vorbis, flac (default: best)")
	rootCmd.Flags().Bool("list-videos", false, "list videos found at the URL and exit without downloading")
	rootCmd.Flags().Int("video-index", 0, "pick the Nth video from a multi-video page (1-based)")
	rootCmd.Flags().String("cookies-from-browser", "", "browser whose cookies authenticate gated downloads (e.g. firefox)")
	rootCmd.Flags().Bool("keep-media", false, "keep the downloaded media file instead of deleting it")
	rootCmd.Flags().StringP("output", "o", "", "output markdown path (single input only)")
	rootCmd.Flags().StringP("model", "m", "", "whisper model size: tiny, base, small, medium, large-v3 (default: base)")
	rootCmd.Flags().StringP("lang", "l", "", "force language code (e.g. en, es, fr); auto-detected if not set")
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		loaded = config.Default()
	}
	cfg = loaded
}

// Execute runs the CLI and returns the process exit code
func Execute(version string) int {
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nCancelled.")
		return ExitInterrupted
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errors.New("no input given")
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" && len(args) > 1 {
		return errors.New("--output can only be used with a single input")
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.OutputPath = output

	logger := newLogger(cmd)

	svc := download.NewService(logger, opts.CookiesFromBrowser)
	engine := transcribe.NewWhisperCppEngine(cfg.Whisper.Binary, cfg.Whisper.ModelDir, logger)
	pipe := pipeline.New(svc, svc, engine, logger, cmd.OutOrStdout())

	results := pipe.Run(cmd.Context(), args, opts)

	failed := 0
	for _, result := range results {
		if result.Status.Succeeded() {
			continue
		}
		failed++
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", result.Reference.Raw, result.Err)
	}

	if len(results) > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nDone: %d/%d transcribed.\n", len(results)-failed, len(results))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

// buildOptions merges flags over config defaults into pipeline options
func buildOptions(cmd *cobra.Command) (pipeline.Options, error) {
	modeStr := stringOr(cmd, "download-mode", cfg.Download.Mode)
	mode, err := model.ParseDownloadMode(modeStr)
	if err != nil {
		return pipeline.Options{}, err
	}

	formatStr := stringOr(cmd, "audio-format", cfg.Download.AudioFormat)
	format, err := model.ParseAudioFormat(formatStr)
	if err != nil {
		return pipeline.Options{}, err
	}

	listVideos, _ := cmd.Flags().GetBool("list-videos")
	videoIndex, _ := cmd.Flags().GetInt("video-index")
	if videoIndex < 0 {
		return pipeline.Options{}, fmt.Errorf("--video-index must be positive, got %d", videoIndex)
	}
	cookies, _ := cmd.Flags().GetString("cookies-from-browser")
	keepMedia, _ := cmd.Flags().GetBool("keep-media")

	return pipeline.Options{
		Mode:               mode,
		AudioFormat:        format,
		ListVideos:         listVideos,
		VideoIndex:         videoIndex,
		CookiesFromBrowser: cookies,
		KeepMedia:          keepMedia,
		Model:              stringOr(cmd, "model", cfg.Whisper.Model),
		Language:           stringOr(cmd, "lang", cfg.Whisper.Language),
	}, nil
}

// stringOr returns the flag value when set, else the config fallback
func stringOr(cmd *cobra.Command, name, fallback string) string {
	if value, _ := cmd.Flags().GetString(name); value != "" {
		return value
	}
	return fallback
}

// newLogger builds the stderr console logger at the configured level
func newLogger(cmd *cobra.Command) zerolog.Logger {
	levelStr := stringOr(cmd, "log-level", cfg.Logging.Level)
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
