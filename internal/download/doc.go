package download

// Package download implements the acquisition half of the pipeline on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp): metadata-only probing of URLs,
// probe output parsing, and plan-driven downloads. YouTube playlist pages are
// probed through github.com/ytget/ytdlp/v2 without spawning the binary.
