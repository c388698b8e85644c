package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/application/port"
	portmocks "github.com/bnema/fontstack/internal/application/port/mocks"
	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/domain/entity"
	"github.com/bnema/fontstack/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "console", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

func fontFile(name string) port.FontFile {
	return port.FontFile{Name: name, Path: "/fonts/" + name, URL: "/static/" + name}
}

// stackMocks wires a file source that returns each file's name as its bytes
// and a parser deriving the family from them. Files whose name starts with
// "bad" fail to parse.
func stackMocks(t *testing.T) (*portmocks.MockFontParser, *portmocks.MockFontFileSource) {
	t.Helper()
	parser := portmocks.NewMockFontParser(t)
	files := portmocks.NewMockFontFileSource(t)

	files.EXPECT().Read(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, f port.FontFile) ([]byte, error) {
			return []byte(f.Name), nil
		}).Maybe()
	parser.EXPECT().Parse(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, data []byte) (entity.FontMetadata, error) {
			name := string(data)
			if strings.HasPrefix(name, "bad") {
				return entity.FontMetadata{}, fmt.Errorf("truncated: %w", entity.ErrParseFailure)
			}
			family, _, _ := strings.Cut(name, ".")
			return entity.FontMetadata{FamilyName: family, GlyphCount: 100}, nil
		}).Maybe()
	return parser, files
}

func TestManageStackUseCase_ParseUploads_KeepsInputOrder(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 3)

	input := make([]port.FontFile, 0, 12)
	for i := range 12 {
		input = append(input, fontFile(fmt.Sprintf("Font%02d.ttf", i)))
	}
	input[4] = fontFile("bad.ttf")

	fonts, failures, err := uc.ParseUploads(ctx, input)
	require.NoError(t, err)

	require.Len(t, fonts, 11)
	assert.Equal(t, "Font00", fonts[0].Name)
	assert.Equal(t, "Font05", fonts[4].Name)
	assert.Equal(t, "Font11.ttf", fonts[10].FileName())
	assert.Equal(t, "/static/Font11.ttf", fonts[10].URL())
	require.Len(t, failures, 1)
	assert.Equal(t, "bad.ttf", failures[0].File.Name)
	assert.Equal(t, entity.ReasonParseFailure, entity.ReasonOf(failures[0].Err))
}

func TestManageStackUseCase_ParseUploads_ReadFailureIsPerFile(t *testing.T) {
	ctx := testContext()
	parser := portmocks.NewMockFontParser(t)
	files := portmocks.NewMockFontFileSource(t)

	files.EXPECT().Read(mock.Anything, fontFile("gone.ttf")).Return(nil, errors.New("no such file"))
	files.EXPECT().Read(mock.Anything, fontFile("Inter.ttf")).Return([]byte("inter"), nil)
	parser.EXPECT().Parse(mock.Anything, []byte("inter")).Return(entity.FontMetadata{FamilyName: "Inter"}, nil)

	uc := usecase.NewManageStackUseCase(parser, files, nil, 0)

	fonts, failures, err := uc.ParseUploads(ctx, []port.FontFile{fontFile("gone.ttf"), fontFile("Inter.ttf")})
	require.NoError(t, err)
	require.Len(t, fonts, 1)
	assert.Equal(t, "Inter", fonts[0].Name)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Err.Error(), "no such file")
}

func TestManageStackUseCase_ParseUploads_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 2)

	fonts, _, err := uc.ParseUploads(ctx, []port.FontFile{fontFile("Inter.ttf")})

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, fonts)
}

func TestManageStackUseCase_AddFallbackFiles_ReportsBatch(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 4)
	s := entity.NewSession()

	out, err := uc.AddFallbackFiles(ctx, s, []port.FontFile{
		fontFile("Inter.ttf"),
		fontFile("Arial.ttf"),
		fontFile("bad.woff2"),
		fontFile("ARIAL.TTF"),
	})
	require.NoError(t, err)

	assert.Len(t, out.Added, 2)
	assert.Equal(t, 1, out.Duplicates)
	assert.Len(t, out.ParseFailures, 1)
	assert.Equal(t, "Inter", s.Registry.Primary().Name)
}

func TestManageStackUseCase_LoadDirectory(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	files.EXPECT().List(mock.Anything, "/fonts").Return([]port.FontFile{fontFile("Inter.ttf"), fontFile("Roboto.ttf")}, nil)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 2)
	s := entity.NewSession()

	out, err := uc.LoadDirectory(ctx, s, "/fonts")
	require.NoError(t, err)

	assert.Len(t, out.Added, 2)
	assert.Equal(t, 2, s.Registry.Len())
}

func TestManageStackUseCase_LoadDirectory_ListError(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	files.EXPECT().List(mock.Anything, "/missing").Return(nil, errors.New("permission denied"))
	uc := usecase.NewManageStackUseCase(parser, files, nil, 2)

	_, err := uc.LoadDirectory(ctx, entity.NewSession(), "/missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list fonts")
}

func TestManageStackUseCase_LoadPrimary_ForgetsReplacedPrimary(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 1)
	s := entity.NewSession()
	_, err := uc.AddFallbackFiles(ctx, s, []port.FontFile{fontFile("Inter.ttf"), fontFile("Arial.ttf")})
	require.NoError(t, err)
	old := s.Registry.Primary().ID
	require.NoError(t, s.Overrides.SetPrimaryOverride("de", old))

	id, err := uc.LoadPrimary(ctx, s, fontFile("Lato.ttf"))
	require.NoError(t, err)

	assert.Equal(t, id, s.Registry.Primary().ID)
	assert.Equal(t, "Lato", s.Registry.Primary().Name)
	assert.Equal(t, 2, s.Registry.Len())
	_, pinned := s.Overrides.PrimaryOverride("de")
	assert.False(t, pinned)
}

func TestManageStackUseCase_LoadPrimary_ParseFailure(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 1)

	_, err := uc.LoadPrimary(ctx, entity.NewSession(), fontFile("bad.otf"))

	require.Error(t, err)
	assert.Equal(t, entity.ReasonParseFailure, entity.ReasonOf(err))
}

func TestManageStackUseCase_AddLanguageFile_Pins(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 1)
	s := entity.NewSession()
	_, err := uc.AddFallbackFiles(ctx, s, []port.FontFile{fontFile("Inter.ttf")})
	require.NoError(t, err)

	jp, err := uc.AddLanguageFile(ctx, s, fontFile("NotoSansJP.otf"), entity.CloneLanguageSpecific, []entity.LanguageID{"ja"})
	require.NoError(t, err)
	de, err := uc.AddLanguageFile(ctx, s, fontFile("Fraktur.ttf"), entity.ClonePrimaryOverride, []entity.LanguageID{"de"})
	require.NoError(t, err)

	got, ok := s.Overrides.FallbackOverride("ja")
	require.True(t, ok)
	assert.Equal(t, jp, got)
	got, ok = s.Overrides.PrimaryOverride("de")
	require.True(t, ok)
	assert.Equal(t, de, got)
}

func TestManageStackUseCase_AddLanguageFile_NeedsPrimary(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 1)

	_, err := uc.AddLanguageFile(ctx, entity.NewSession(), fontFile("NotoSansJP.otf"), entity.CloneLanguageSpecific, nil)

	assert.Equal(t, entity.ReasonInvalidPrimaryCandidate, entity.ReasonOf(err))
}

func TestManageStackUseCase_AddSystemFonts_ReportsMissing(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	detector := portmocks.NewMockSystemFontDetector(t)
	detector.EXPECT().IsInstalled(mock.Anything, "Georgia").Return(true)
	detector.EXPECT().IsInstalled(mock.Anything, "Comic Neue").Return(false)
	detector.EXPECT().IsInstalled(mock.Anything, "georgia").Return(true)
	uc := usecase.NewManageStackUseCase(parser, files, detector, 1)
	s := entity.NewSession()
	_, err := uc.AddFallbackFiles(ctx, s, []port.FontFile{fontFile("Inter.ttf")})
	require.NoError(t, err)

	out, err := uc.AddSystemFonts(ctx, s, []string{"Georgia", "Comic Neue", "georgia"})
	require.NoError(t, err)

	assert.Len(t, out.Added, 2)
	assert.Equal(t, 1, out.Duplicates)
	assert.Equal(t, []string{"Comic Neue"}, out.NotInstalled)
}

func TestManageStackUseCase_RemoveFont(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	uc := usecase.NewManageStackUseCase(parser, files, nil, 1)
	s := entity.NewSession()
	out, err := uc.AddFallbackFiles(ctx, s, []port.FontFile{fontFile("Inter.ttf"), fontFile("Arial.ttf")})
	require.NoError(t, err)
	arial := out.Added[1]
	require.NoError(t, s.Overrides.SetFallbackOverride("ja", arial))

	removed, err := uc.RemoveFont(ctx, s, arial)
	require.NoError(t, err)
	assert.Equal(t, []entity.FontID{arial}, removed)
	_, ok := s.Overrides.FallbackOverride("ja")
	assert.False(t, ok)

	_, err = uc.RemoveFont(ctx, s, out.Added[0])
	assert.Equal(t, entity.ReasonCannotRemoveLastFont, entity.ReasonOf(err))
}
