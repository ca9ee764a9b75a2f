// Package snapshot rasterizes a maze grid into a PNG picture with arrows on
// the start and goal cells.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/palette"
)

const (
	MIN_CELL_PIXELS = 8
	PLATFORM_MARGIN = 2
)

var (
	startColor = color.RGBA{40, 180, 70, 255}
	goalColor  = color.RGBA{100, 120, 255, 255}
)

// gridImage draws a grid lazily, one pixel at a time.
type gridImage struct {
	grid       *model.Grid
	cellPixels int
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	side := m.grid.Size() * m.cellPixels
	return image.Rect(0, 0, side, side)
}

func (m *gridImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(m.Bounds()) {
		return color.Transparent
	}
	cp := m.cellPixels
	c := m.grid.At(x/cp, y/cp)
	ox, oy := x%cp, y%cp
	last := cp - 1

	// corners are always drawn so wall ends meet
	if (ox == 0 || ox == last) && (oy == 0 || oy == last) {
		return palette.COLOR_LIGHT_GRAY
	}
	switch {
	case ox == 0 && c.Wall(model.Left),
		ox == last && c.Wall(model.Right),
		oy == 0 && c.Wall(model.Up),
		oy == last && c.Wall(model.Down):
		return palette.COLOR_LIGHT_GRAY
	}
	if c == m.grid.Goal() && ox >= PLATFORM_MARGIN && ox < cp-PLATFORM_MARGIN &&
		oy >= PLATFORM_MARGIN && oy < cp-PLATFORM_MARGIN {
		return palette.COLOR_LIGHT_GREEN
	}
	if c.Visited {
		return palette.COLOR_DARK_GRAY
	}
	return palette.COLOR_BACKGROUND
}

// Render draws the grid with cellPixels per cell side. The start cell carries
// a right arrow and the goal a down arrow, each half a cell long.
func Render(grid *model.Grid, cellPixels int) (*image.RGBA, error) {
	if cellPixels < MIN_CELL_PIXELS {
		return nil, fmt.Errorf("cell side %d is below %d pixels", cellPixels, MIN_CELL_PIXELS)
	}
	decorated := image_utils.NewCompositeImage()
	e := decorated.AddImage(image_utils.ToRGBA(&gridImage{grid: grid, cellPixels: cellPixels}), image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("error setting base maze image: %w", e)
	}

	arrow := cellPixels / 2
	for _, mark := range []struct {
		cell *model.Cell
		pic  image.Image
	}{
		{grid.Start(), image_utils.RightArrow(startColor)},
		{grid.Goal(), image_utils.DownArrow(goalColor)},
	} {
		at := image.Pt(mark.cell.Col()*cellPixels+arrow/2, mark.cell.Row()*cellPixels+arrow/2)
		e = decorated.AddImage(image_utils.ResizeImage(mark.pic, arrow, arrow), at)
		if e != nil {
			return nil, fmt.Errorf("error adding arrow at %v: %w", mark.cell, e)
		}
	}
	return image_utils.ToRGBA(decorated), nil
}

// Encode writes the rendered grid as PNG.
func Encode(w io.Writer, grid *model.Grid, cellPixels int) error {
	pic, err := Render(grid, cellPixels)
	if err != nil {
		return err
	}
	if err := png.Encode(w, pic); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}
