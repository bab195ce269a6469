package adapter

import "github.com/atotto/clipboard"

// ClipboardAdapter abstracts the system clipboard so the workflow can be
// tested without one. A write failure is expected on headless systems and
// must be treated as non-fatal by callers.
type ClipboardAdapter interface {
	Write(text string) error
}

// SystemClipboard writes through the native clipboard mechanism.
type SystemClipboard struct{}

// NewSystemClipboard constructs a SystemClipboard ready to be wired into the
// workflow.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Write places text on the system clipboard. The write is attempted exactly
// once.
func (c *SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
