package preview_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-photos/internal/preview"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(40 * x), G: uint8(40 * y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestRender(t *testing.T) {
	t.Run("TwoPixelRowsPerLine", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.Render(&out, encodePNG(t, 4, 4), 80)
		require.NoError(t, err)

		assert.Equal(t, 2, strings.Count(out.String(), "\n"))
		assert.Equal(t, 8, strings.Count(out.String(), "▀"))
	})

	t.Run("OddHeightKeepsLastRow", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.Render(&out, encodePNG(t, 2, 3), 80)
		require.NoError(t, err)

		assert.Equal(t, 2, strings.Count(out.String(), "\n"))
	})

	t.Run("DownscalesToWidth", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.Render(&out, encodePNG(t, 200, 100), 10)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.NotEmpty(t, lines)
		assert.Equal(t, 3, len(lines))
		assert.Equal(t, 10, strings.Count(lines[0], "▀"))
	})

	t.Run("NeverScalesUp", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.Render(&out, encodePNG(t, 4, 4), 500)
		require.NoError(t, err)

		assert.Equal(t, 8, strings.Count(out.String(), "▀"))
	})

	t.Run("JunkInput", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.Render(&out, strings.NewReader("not an image"), 80)
		assert.Error(t, err)
		assert.Zero(t, out.Len())
	})
}

func TestRenderFile(t *testing.T) {
	t.Run("RendersFromDisk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, encodePNG(t, 4, 4).Bytes(), 0o644))

		var out bytes.Buffer
		err := preview.RenderFile(&out, path, 80)
		require.NoError(t, err)
		assert.Equal(t, 8, strings.Count(out.String(), "▀"))
	})

	t.Run("MissingFile", func(t *testing.T) {
		var out bytes.Buffer
		err := preview.RenderFile(&out, filepath.Join(t.TempDir(), "missing.png"), 80)
		assert.Error(t, err)
	})
}
