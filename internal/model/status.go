package model

// RunStatus represents the status of one reference going through the pipeline
type RunStatus string

const (
	// StatusPending means the reference is queued but not started
	StatusPending RunStatus = "Pending"

	// StatusProbing means the URL is being probed for media entries
	StatusProbing RunStatus = "Probing"

	// StatusDownloading means the media download is in progress
	StatusDownloading RunStatus = "Downloading"

	// StatusTranscribing means the transcription engine is running
	StatusTranscribing RunStatus = "Transcribing"

	// StatusListed means the run ended by printing the entry listing
	StatusListed RunStatus = "Listed"

	// StatusCompleted means the transcript was written successfully
	StatusCompleted RunStatus = "Completed"

	// StatusError means the run failed
	StatusError RunStatus = "Error"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// Succeeded returns true for terminal states that are not failures
func (rs RunStatus) Succeeded() bool {
	return rs == StatusListed || rs == StatusCompleted
}
