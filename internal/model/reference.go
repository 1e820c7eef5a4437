package model

import "net/url"

// ReferenceKind tells whether a raw input names a local file or a remote stream
type ReferenceKind string

const (
	// KindLocalPath means the reference is treated as a filesystem path
	KindLocalPath ReferenceKind = "LocalPath"

	// KindURL means the reference is an absolute http(s) URL
	KindURL ReferenceKind = "URL"
)

// Reference is a user-supplied media reference after classification
type Reference struct {
	Raw  string
	Kind ReferenceKind
}

// Classify decides whether raw is a URL or a local path. Pure string
// inspection: anything that is not an absolute http(s) URL with a host is a
// local path, whether or not the file exists (that is checked when the file
// is read).
func Classify(raw string) Reference {
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return Reference{Raw: raw, Kind: KindURL}
	}
	return Reference{Raw: raw, Kind: KindLocalPath}
}

// IsURL returns true if the reference points at a remote stream
func (r Reference) IsURL() bool {
	return r.Kind == KindURL
}
