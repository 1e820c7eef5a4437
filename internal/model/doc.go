package model

// Package model defines domain data structures used across the app:
// classified media references, probed entries, acquisition plans, run
// statuses, and the error types surfaced to the user.
