// Package model holds the value types shared across the here pipeline.
package model

// Path represents a file system path.
type Path string

// SlashStyle selects the separator direction of the final output.
type SlashStyle int

const (
	// StylePlatform leaves separators the way the platform produced them.
	StylePlatform SlashStyle = iota

	// StylePosix forces every separator to a forward slash.
	StylePosix

	// StyleWindows forces every separator to a backslash.
	StyleWindows
)

// Options is the immutable configuration record built once from CLI input.
// The zero value is the plain "print and copy the working directory" run.
type Options struct {
	// Target is the optional positional argument: a path segment to join onto
	// the working directory, or a program name when WhereSearch is set.
	Target string

	FolderComponent bool
	WhereSearch     bool
	ChangeDirectory bool
	EscapeBackslash bool
	WrapQuote       bool
	ResolveSymlink  bool
	NoCopy          bool
	NoColor         bool
	SelectFirst     bool
	Slashes         SlashStyle
}
