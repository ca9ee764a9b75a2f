// Package palette holds the colors shared by every renderer.
package palette

import "image/color"

var (
	COLOR_LIGHT_GREEN = color.RGBA{0x47, 0xe1, 0x0c, 0xff}
	COLOR_LIGHT_GRAY  = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	COLOR_GRAY        = color.RGBA{0x23, 0x23, 0x23, 0xff}
	COLOR_DARK_GRAY   = color.RGBA{0x12, 0x12, 0x12, 0xff}
	COLOR_PLAYER      = color.RGBA{0xff, 0x3b, 0x44, 0xff}
	COLOR_BACKGROUND  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	// premultiplied 0xaaff70e5
	COLOR_SCANNER = color.RGBA{0xaa, 0x4a, 0x98, 0xaa}
)
