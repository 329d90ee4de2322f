// Package preview renders downloaded images inside the terminal.
//
// An image is decoded, downscaled to fit the terminal width, and drawn
// with half-block cells: each "▀" covers two pixel rows, the upper as
// the foreground color and the lower as the background color.
package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultWidth is the rendering width used when the caller passes zero.
const DefaultWidth = 72

// RenderFile opens the image at path and renders it to out.
func RenderFile(out io.Writer, path string, width int) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	return Render(out, file, width)
}

// Render decodes the image from r and writes its terminal rendering to out.
// Width caps the number of terminal columns; the height follows the image's
// aspect ratio. Images smaller than the cap are not scaled up.
func Render(out io.Writer, r io.Reader, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	thumb := resize.Thumbnail(uint(width), uint(2*width), img, resize.Lanczos3)
	_, err = io.WriteString(out, renderHalfBlocks(thumb))
	return err
}

func renderHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			upper := cellColor(img, x, y)
			lower := upper
			if y+1 < bounds.Max.Y {
				lower = cellColor(img, x, y+1)
			}

			cell := lipgloss.NewStyle().
				Foreground(upper).
				Background(lower).
				Render("▀")
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func cellColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
