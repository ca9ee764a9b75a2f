package snapshot

import (
	"bytes"
	"go/build"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/palette"
)

var maze = `
+-+-+
|.  |
+ + +
|. .|
+-+-+
`

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestGridImage(t *testing.T) {
	grid := model.MustParse(maze)
	img := &gridImage{grid: grid, cellPixels: 20}
	assert.Equal(t, 40, img.Bounds().Dx())

	assert.Equal(t, palette.COLOR_LIGHT_GRAY, img.At(0, 10), "left border")
	assert.Equal(t, palette.COLOR_LIGHT_GRAY, img.At(10, 39), "bottom border")
	assert.Equal(t, palette.COLOR_DARK_GRAY, img.At(19, 10), "open wall between visited cells")
	assert.Equal(t, palette.COLOR_BACKGROUND, img.At(30, 10), "unvisited cell")
	assert.Equal(t, palette.COLOR_LIGHT_GREEN, img.At(23, 23), "goal platform")
	assert.Equal(t, color.Transparent, img.At(-1, 0))
}

func TestRender(t *testing.T) {
	grid := model.MustParse(maze)
	pic, err := Render(grid, 20)
	require.NoError(t, err)
	assert.Equal(t, 40, pic.Bounds().Dx())
	assert.Equal(t, 40, pic.Bounds().Dy())
	// away from the arrows the base picture shows through
	assert.Equal(t, palette.COLOR_LIGHT_GRAY, rgba(pic.At(0, 10)))
	assert.Equal(t, palette.COLOR_LIGHT_GREEN, rgba(pic.At(23, 23)))

	_, err = Render(grid, 4)
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model.MustParse(maze), 16))
	pic, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 32, pic.Bounds().Dx())
}

func TestImportsOnlyLeafPackages(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)
	assert.NotContains(t, pkg.Imports, "github.com/zucenko/mazewalk/game")
	assert.Contains(t, pkg.Imports, "github.com/zucenko/mazewalk/palette")
}
