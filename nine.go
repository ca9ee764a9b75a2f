package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
)

const (
	FRAME_SOURCE = 24
	FRAME_EDGE   = 8
	FRAME_BORDER = 2
)

// Nine draws a nine-patch image stretched over a rectangle. Corners keep
// their size, edges stretch along one axis, the centre along both.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [4][2]float64
}

// NewButtonFrame builds the nine-patch used behind menu buttons: a bordered
// square with a dark fill.
func NewButtonFrame() (*Nine, error) {
	img, err := ebiten.NewImage(FRAME_SOURCE, FRAME_SOURCE, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := img.Fill(color.White); err != nil {
		return nil, err
	}
	ebitenutil.DrawRect(img, FRAME_BORDER, FRAME_BORDER, FRAME_SOURCE-2*FRAME_BORDER, FRAME_SOURCE-2*FRAME_BORDER,
		color.RGBA{0x20, 0x20, 0x20, 0xff})
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1, Scale: 1,
		positions: [4][2]int{{0, 0}, {FRAME_EDGE, FRAME_EDGE},
			{FRAME_SOURCE - FRAME_EDGE, FRAME_SOURCE - FRAME_EDGE}, {FRAME_SOURCE, FRAME_SOURCE}},
	}, nil
}

func (n *Nine) SetColor(c color.RGBA) {
	n.R = float64(c.R) / 255
	n.G = float64(c.G) / 255
	n.B = float64(c.B) / 255
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

// Draw renders the nine patches, row by row.
func (n *Nine) Draw(screen *ebiten.Image) {
	scaleX := [3]float64{n.Scale, n.scaleCenterWidth, n.Scale}
	scaleY := [3]float64{n.Scale, n.scaleCenterHeight, n.Scale}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX[col], scaleY[row])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
			_ = screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
