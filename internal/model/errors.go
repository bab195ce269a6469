package model

import "errors"

// ErrNotFound is returned when search mode finds no executable matching the
// requested program name.
var ErrNotFound = errors.New("program not found")

// ErrCancelled is returned when the user aborts the interactive candidate
// selection. It is fatal and carries a non-zero exit code.
var ErrCancelled = errors.New("selection cancelled")

// Warning is a non-fatal condition surfaced to the user. Warnings never
// change the exit code and never halt the pipeline.
type Warning string

func (w Warning) String() string {
	return string(w)
}
