package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, ffprobe invocation, and per-OS install hints.
