package model

// ServerMessage is the gob payload streamed to generation observers.
type ServerMessage struct {
	Setup  []Setup
	Frames []Frame
	Done   bool
}

type Setup struct {
	Session   string
	Size      int
	Algorithm string
	Walls     bool
}

// Frame describes one generator step: the region being scanned and every cell
// whose walls changed during the step.
type Frame struct {
	Step  int
	Scan  Rect
	Cells []Visibilize
}

type Visibilize struct {
	Col, Row int
	Walls    [4]bool
	Visited  bool
}

// Visibilizer captures the observable state of a cell.
func Visibilizer(c *Cell) Visibilize {
	return Visibilize{Col: c.col, Row: c.row, Walls: c.walls, Visited: c.Visited}
}

// ClientMessage is sent by observers to control their session.
type ClientMessage struct {
	Pause bool
	Stop  bool
}

// Apply copies received cell states onto g. Walls go through SetWall so the
// neighbour's side follows.
func Apply(g *Grid, cells []Visibilize) {
	for _, v := range cells {
		c := g.At(v.Col, v.Row)
		if c == nil {
			continue
		}
		for _, d := range Directions {
			g.SetWall(c, d, v.Walls[d])
		}
		c.Visited = v.Visited
	}
}
