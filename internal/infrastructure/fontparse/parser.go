// Package fontparse extracts stack metadata from OpenType and TrueType binaries.
package fontparse

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/bnema/fontstack/internal/domain/entity"
)

var (
	tagFvar = opentype.MustNewTag("fvar")
	tagOS2  = opentype.MustNewTag("OS/2")
	tagWght = opentype.MustNewTag("wght")
)

// Parser implements port.FontParser.
//
// Names and glyph counts come from x/image sfnt; the fvar and OS/2 tables
// are read raw through the go-text loader.
type Parser struct{}

// New creates a parser.
func New() *Parser {
	return &Parser{}
}

// Parse implements port.FontParser.Parse. Collections yield their first face.
func (p *Parser) Parse(ctx context.Context, data []byte) (entity.FontMetadata, error) {
	if err := ctx.Err(); err != nil {
		return entity.FontMetadata{}, err
	}
	if len(data) < 12 {
		return entity.FontMetadata{}, fmt.Errorf("font data too short (%d bytes): %w", len(data), entity.ErrParseFailure)
	}

	f, err := parseSFNT(data)
	if err != nil {
		return entity.FontMetadata{}, fmt.Errorf("sfnt: %v: %w", err, entity.ErrParseFailure)
	}

	meta := entity.FontMetadata{
		FamilyName: familyName(f),
		GlyphCount: f.NumGlyphs(),
	}

	ld, err := loader(data)
	if err != nil {
		return entity.FontMetadata{}, fmt.Errorf("opentype: %v: %w", err, entity.ErrParseFailure)
	}
	if table, err := ld.RawTable(tagFvar); err == nil {
		meta.WeightAxis = parseWeightAxis(table)
	}
	if table, err := ld.RawTable(tagOS2); err == nil {
		meta.StaticWeight = parseWeightClass(table)
	}
	return meta, nil
}

func isCollection(data []byte) bool {
	return bytes.HasPrefix(data, []byte("ttcf"))
}

func parseSFNT(data []byte) (*sfnt.Font, error) {
	if !isCollection(data) {
		return sfnt.Parse(data)
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	return c.Font(0)
}

func loader(data []byte) (*opentype.Loader, error) {
	r := bytes.NewReader(data)
	if !isCollection(data) {
		return opentype.NewLoader(r)
	}
	lds, err := opentype.NewLoaders(r)
	if err != nil {
		return nil, err
	}
	if len(lds) == 0 {
		return nil, errors.New("empty collection")
	}
	return lds[0], nil
}

func familyName(f *sfnt.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDTypographicFamily, sfnt.NameIDFamily} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return ""
}

// parseWeightAxis returns the wght axis of an fvar table, or nil.
func parseWeightAxis(table []byte) *entity.WeightAxis {
	if len(table) < 16 {
		return nil
	}
	axesOffset := int(binary.BigEndian.Uint16(table[4:]))
	axisCount := int(binary.BigEndian.Uint16(table[8:]))
	axisSize := int(binary.BigEndian.Uint16(table[10:]))
	if axisSize < 20 {
		return nil
	}

	for i := 0; i < axisCount; i++ {
		off := axesOffset + i*axisSize
		if off+20 > len(table) {
			return nil
		}
		rec := table[off:]
		if opentype.Tag(binary.BigEndian.Uint32(rec)) != tagWght {
			continue
		}
		return &entity.WeightAxis{
			Min:     fixed16(rec[4:]),
			Default: fixed16(rec[8:]),
			Max:     fixed16(rec[12:]),
		}
	}
	return nil
}

// parseWeightClass returns usWeightClass of an OS/2 table, or nil.
func parseWeightClass(table []byte) *int {
	if len(table) < 6 {
		return nil
	}
	w := int(binary.BigEndian.Uint16(table[4:]))
	if w == 0 {
		return nil
	}
	return &w
}

func fixed16(b []byte) float64 {
	v := float64(int32(binary.BigEndian.Uint32(b))) / 65536
	return math.Round(v*1000) / 1000
}
