package filesystem

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/fonts/Roboto.ttf":         "roboto",
		"/fonts/Inter Variable.otf": "inter",
		"/fonts/README.md":          "docs",
		"/fonts/nested/Lato.woff2":  "lato",
		"/fonts/NotoSansCJK.TTC":    "noto",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestFontSource_List(t *testing.T) {
	src := New(memFS(t), "/assets/fonts/")

	files, err := src.List(context.Background(), "/fonts")

	require.NoError(t, err)
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Inter Variable.otf", "NotoSansCJK.TTC", "Roboto.ttf"}, names)
	assert.Equal(t, "/assets/fonts/Inter%20Variable.otf", files[0].URL)
	assert.Equal(t, "/fonts/Roboto.ttf", files[2].Path)
	assert.Equal(t, int64(len("roboto")), files[2].Size)
}

func TestFontSource_Read(t *testing.T) {
	src := New(memFS(t), "")
	files, err := src.List(context.Background(), "/fonts")
	require.NoError(t, err)

	data, err := src.Read(context.Background(), files[2])

	require.NoError(t, err)
	assert.Equal(t, "roboto", string(data))
	assert.Equal(t, "Roboto.ttf", files[2].URL)
}

func TestFontSource_MissingDirectory(t *testing.T) {
	src := New(afero.NewMemMapFs(), "")

	_, err := src.List(context.Background(), "/nope")

	assert.Error(t, err)
}

func TestFontSource_FileFor(t *testing.T) {
	src := New(memFS(t), "fonts")

	file, err := src.FileFor("/fonts/nested/Lato.woff2")
	require.NoError(t, err)
	assert.Equal(t, "Lato.woff2", file.Name)
	assert.Equal(t, "fonts/Lato.woff2", file.URL)

	_, err = src.FileFor("/fonts/nested")
	assert.Error(t, err)
}
