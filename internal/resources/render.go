package resources

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// HalfBlock is the glyph used for every rendered cell.
const HalfBlock = "▀"

// ErrEmptyImage is returned when a picture has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// CellSize returns the number of terminal columns and rows a picture of the
// given bounds occupies when fitted into maxCols x maxRows, keeping the
// aspect ratio. Each row holds two pixel rows.
func CellSize(bounds image.Rectangle, maxCols, maxRows int) (int, int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}

	cols := maxCols
	pixelRows := h * cols / w
	if pixelRows > maxRows*2 {
		pixelRows = maxRows * 2
		cols = w * pixelRows / h
	}

	if cols < 1 {
		cols = 1
	}
	if pixelRows < 1 {
		pixelRows = 1
	}

	return cols, (pixelRows + 1) / 2
}

// Render rasterises img into at most maxCols x maxRows terminal cells. The
// picture is scaled once into a cols x rows*2 buffer and each cell takes its
// upper and lower pixel from that buffer.
func Render(img image.Image, maxCols, maxRows int) (string, error) {
	if img == nil {
		return "", ErrEmptyImage
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return "", ErrEmptyImage
	}

	cols, rows := CellSize(bounds, maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return "", fmt.Errorf("no room to render %dx%d image in %dx%d cells",
			bounds.Dx(), bounds.Dy(), maxCols, maxRows)
	}

	scaled := Scale(img, cols, rows*2)

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			cell := lipgloss.NewStyle().
				Foreground(hexColor(scaled.RGBAAt(col, row*2))).
				Background(hexColor(scaled.RGBAAt(col, row*2+1)))
			line.WriteString(cell.Render(HalfBlock))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n"), nil
}

// Scale resamples img into a new width x height RGBA buffer.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
