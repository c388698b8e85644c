package port

import (
	"context"

	"github.com/bnema/fontstack/internal/domain/entity"
)

// FontParser extracts metadata from a font binary.
// Failures wrap entity.ErrParseFailure.
type FontParser interface {
	Parse(ctx context.Context, data []byte) (entity.FontMetadata, error)
}
