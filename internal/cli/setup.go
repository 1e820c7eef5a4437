package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/lrstanley/go-ytdlp"
	"github.com/spf13/cobra"

	"github.com/xscribe/xscribe/internal/platform"
	"github.com/xscribe/xscribe/internal/transcribe"
)

// Whisper model hosting
const (
	ModelBaseURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install yt-dlp and pre-download a whisper model",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().StringP("model", "m", "base", "model to download: tiny, base, small, medium, large-v3")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Installing yt-dlp...")
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	fmt.Fprintln(out, "yt-dlp ready")

	for _, tool := range []string{transcribe.FFmpegCommand, platform.FFprobeCommand} {
		if _, err := exec.LookPath(tool); err != nil {
			fmt.Fprintf(out, "%s is not installed. Install it with: %s\n", tool, platform.InstallHint("ffmpeg"))
		}
	}
	if _, err := exec.LookPath(cfg.Whisper.Binary); err != nil {
		fmt.Fprintf(out, "%s is not installed. Install it with: %s\n", cfg.Whisper.Binary, platform.InstallHint("whisper-cpp"))
	}

	modelName, _ := cmd.Flags().GetString("model")
	path, err := fetchModel(ctx, modelName, cfg.Whisper.ModelDir, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Model ready: %s\n", path)
	fmt.Fprintln(out, "You're all set! Run `xscribe <file-or-url>` to transcribe.")
	return nil
}

// fetchModel downloads a ggml model file into modelDir unless already there
func fetchModel(ctx context.Context, name, modelDir string, out io.Writer) (string, error) {
	fileName := transcribe.ModelFilePrefix + name + transcribe.ModelFileExt
	path := filepath.Join(modelDir, fileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := platform.CreateDirectoryIfNotExists(modelDir); err != nil {
		return "", fmt.Errorf("create model directory: %w", err)
	}

	fmt.Fprintf(out, "Downloading model %s...\n", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ModelBaseURL+fileName, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download model %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download model %s: unexpected status %s", name, resp.Status)
	}

	tmp, err := os.CreateTemp(modelDir, fileName+".download-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("download model %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}
