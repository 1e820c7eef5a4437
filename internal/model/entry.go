package model

// ProbedEntry is one candidate media item discovered at a URL. Index is
// 1-based and follows the order the external tool reported the entries in;
// that order is what the user sees and what --video-index addresses.
type ProbedEntry struct {
	Index    int
	ID       string
	Title    string
	Duration string // human readable, "Unknown" when the probe has none
	URL      string // direct entry URL when the probe reports one
	Formats  []string
}

// ProbeReport is the result of a metadata-only probe of a URL.
//
// Playlist is false when the URL is a single, non-decomposable resource; in
// that case Entries is empty and the URL itself is the sole thing to
// download. Playlist true with zero entries means the page exposed an entry
// list but it was empty — no extractable media.
type ProbeReport struct {
	Playlist bool
	Title    string
	Entries  []ProbedEntry
}
