package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontstack/internal/application/port"
	portmocks "github.com/bnema/fontstack/internal/application/port/mocks"
	"github.com/bnema/fontstack/internal/application/usecase"
	"github.com/bnema/fontstack/internal/domain/entity"
)

func TestConfigDocumentUseCase_Export(t *testing.T) {
	ctx := testContext()
	codec := portmocks.NewMockSessionCodec(t)
	s, _ := sessionWith(t, "Inter")
	codec.EXPECT().Encode(s).Return([]byte(`{"metadata":{}}`), nil)

	uc := usecase.NewConfigDocumentUseCase(codec, nil)
	data, err := uc.Export(ctx, s)

	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{}}`, string(data))
}

func TestConfigDocumentUseCase_Export_Error(t *testing.T) {
	ctx := testContext()
	codec := portmocks.NewMockSessionCodec(t)
	codec.EXPECT().Encode(mock.Anything).Return(nil, errors.New("boom"))

	uc := usecase.NewConfigDocumentUseCase(codec, nil)
	_, err := uc.Export(ctx, entity.NewSession())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode session")
}

func TestConfigDocumentUseCase_Import_ParsesFilesFirst(t *testing.T) {
	ctx := testContext()
	parser, files := stackMocks(t)
	codec := portmocks.NewMockSessionCodec(t)
	stack := usecase.NewManageStackUseCase(parser, files, nil, 2)
	restored := entity.NewSession()
	report := port.ImportReport{Fonts: 1, DroppedFonts: 1, Unresolved: []string{"Roboto"}}
	opts := port.ImportOptions{KeepUnresolved: false}

	codec.EXPECT().Decode([]byte("doc"), mock.Anything, opts).
		RunAndReturn(func(_ []byte, fonts []*entity.Font, _ port.ImportOptions) (*entity.Session, port.ImportReport, error) {
			require.Len(t, fonts, 1)
			assert.Equal(t, "Inter", fonts[0].Name)
			return restored, report, nil
		})

	uc := usecase.NewConfigDocumentUseCase(codec, stack)
	out, err := uc.Import(ctx, usecase.ImportInput{
		Data:    []byte("doc"),
		Files:   []port.FontFile{fontFile("Inter.ttf"), fontFile("bad.ttf")},
		Options: opts,
	})
	require.NoError(t, err)

	assert.Same(t, restored, out.Session)
	assert.Equal(t, report, out.Report)
	require.Len(t, out.ParseFailures, 1)
	assert.Equal(t, "bad.ttf", out.ParseFailures[0].File.Name)
}

func TestConfigDocumentUseCase_Import_DecodeError(t *testing.T) {
	ctx := testContext()
	codec := portmocks.NewMockSessionCodec(t)
	codec.EXPECT().Decode(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, port.ImportReport{}, entity.ErrUnsupportedVersion)

	uc := usecase.NewConfigDocumentUseCase(codec, nil)
	_, err := uc.Import(ctx, usecase.ImportInput{Data: []byte("{}")})

	require.ErrorIs(t, err, entity.ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "failed to decode document")
}
