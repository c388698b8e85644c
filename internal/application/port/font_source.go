package port

import "context"

// FontFile is a font binary available to the stack.
type FontFile struct {
	Name string // base file name, e.g. "Inter.ttf"
	Path string // path inside the source
	URL  string // URL used by @font-face rules
	Size int64
}

// FontFileSource lists and reads font binaries.
type FontFileSource interface {
	// List returns the font files found in dir, sorted by name.
	List(ctx context.Context, dir string) ([]FontFile, error)

	// Read returns the content of a listed file.
	Read(ctx context.Context, file FontFile) ([]byte, error)
}
