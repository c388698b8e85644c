// Package filesystem provides the font file source over an afero filesystem.
package filesystem

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
)

// FontSource implements port.FontFileSource.
type FontSource struct {
	fs        afero.Fs
	urlPrefix string
}

// New creates a font source over fs. File URLs are urlPrefix joined with the
// escaped file name; an empty prefix yields bare file names.
func New(fs afero.Fs, urlPrefix string) *FontSource {
	return &FontSource{fs: fs, urlPrefix: urlPrefix}
}

// NewOS creates a font source over the OS filesystem.
func NewOS(urlPrefix string) *FontSource {
	return New(afero.NewOsFs(), urlPrefix)
}

// List implements port.FontFileSource. Subdirectories and files without a
// font extension are skipped.
func (s *FontSource) List(ctx context.Context, dir string) ([]port.FontFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read font directory %s: %w", dir, err)
	}

	files := make([]port.FontFile, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !entity.IsFontFile(info.Name()) {
			continue
		}
		files = append(files, port.FontFile{
			Name: info.Name(),
			Path: filepath.Join(dir, info.Name()),
			URL:  s.fileURL(info.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Read implements port.FontFileSource.
func (s *FontSource) Read(ctx context.Context, file port.FontFile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", file.Path, err)
	}
	return data, nil
}

// FileFor describes a single font file by path, for callers that were given
// paths rather than a directory.
func (s *FontSource) FileFor(path string) (port.FontFile, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return port.FontFile{}, fmt.Errorf("failed to stat font file %s: %w", path, err)
	}
	if info.IsDir() {
		return port.FontFile{}, fmt.Errorf("%s is a directory: %w", path, entity.ErrInvalidValue)
	}
	name := filepath.Base(path)
	return port.FontFile{Name: name, Path: path, URL: s.fileURL(name), Size: info.Size()}, nil
}

func (s *FontSource) fileURL(name string) string {
	escaped := url.PathEscape(name)
	if s.urlPrefix == "" {
		return escaped
	}
	return strings.TrimSuffix(s.urlPrefix, "/") + "/" + escaped
}

var _ port.FontFileSource = (*FontSource)(nil)
