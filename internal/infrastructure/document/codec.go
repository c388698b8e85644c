package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/fontstack/internal/application/port"
	"github.com/bnema/fontstack/internal/domain/entity"
)

// Codec implements port.SessionCodec with indented JSON.
type Codec struct {
	now func() time.Time
}

// NewCodec creates a codec stamping documents with now. A nil clock uses time.Now.
func NewCodec(now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{now: now}
}

// Encode implements port.SessionCodec.
func (c *Codec) Encode(s *entity.Session) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("nil session: %w", entity.ErrInvalidValue)
	}
	data, err := json.MarshalIndent(Export(s, c.now()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode implements port.SessionCodec.
func (c *Codec) Decode(data []byte, files []*entity.Font, opts port.ImportOptions) (*entity.Session, port.ImportReport, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, port.ImportReport{}, err
	}
	return Import(doc, files, opts)
}

// Parse reads a document without importing it.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse document: %v: %w", err, entity.ErrInvalidValue)
	}
	if doc.Metadata.Version == "" {
		return Document{}, fmt.Errorf("document without a version: %w", entity.ErrUnsupportedVersion)
	}
	return doc, nil
}

var _ port.SessionCodec = (*Codec)(nil)
