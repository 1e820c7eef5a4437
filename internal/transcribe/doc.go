package transcribe

// Package transcribe defines the transcription engine boundary and the
// markdown transcript writer. The shipped engine shells out to whisper.cpp;
// anything that can turn a media file into timed segments satisfies the
// Transcriber interface.
