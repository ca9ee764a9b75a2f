package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed is returned by Parse for text that is not a square maze.
var ErrMalformed = errors.New("malformed maze text")

// Format writes the grid as text. Wall lines use '+' corners and '-' walls,
// cell lines use '|' walls and '.' for visited cells:
//
//	+-+-+
//	|. .|
//	+-+ +
//	|   |
//	+-+-+
func Format(g *Grid) string {
	var b strings.Builder
	size := g.Size()
	for r := 0; r <= size; r++ {
		b.WriteByte('+')
		for c := 0; c < size; c++ {
			var wall bool
			if r < size {
				wall = g.Matrix[r][c].walls[Up]
			} else {
				wall = g.Matrix[size-1][c].walls[Down]
			}
			if wall {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
			b.WriteByte('+')
		}
		b.WriteByte('\n')
		if r == size {
			break
		}
		for c := 0; c < size; c++ {
			cell := g.Matrix[r][c]
			if cell.walls[Left] {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			if cell.Visited {
				b.WriteByte('.')
			} else {
				b.WriteByte(' ')
			}
		}
		if g.Matrix[r][size-1].walls[Right] {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads a grid written by Format.
func Parse(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		s := strings.TrimRight(scanner.Text(), "\r")
		if s == "" {
			continue
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: %d lines", ErrMalformed, len(lines))
	}
	size := (len(lines) - 1) / 2
	width := 2*size + 1
	for i, s := range lines {
		if len(s) != width {
			return nil, fmt.Errorf("%w: line %d has %d chars, want %d", ErrMalformed, i+1, len(s), width)
		}
	}

	g := NewGrid(size, false)
	for i, s := range lines {
		if i%2 == 0 {
			// wall line above row i/2
			r := i / 2
			for c := 0; c < size; c++ {
				switch s[2*c+1] {
				case '-':
					if r < size {
						g.SetWall(g.Matrix[r][c], Up, true)
					} else {
						g.SetWall(g.Matrix[size-1][c], Down, true)
					}
				case ' ':
				default:
					return nil, fmt.Errorf("%w: unexpected %q on line %d", ErrMalformed, s[2*c+1], i+1)
				}
			}
			continue
		}
		// cell line
		r := i / 2
		for c := 0; c <= size; c++ {
			switch s[2*c] {
			case '|':
				if c < size {
					g.SetWall(g.Matrix[r][c], Left, true)
				} else {
					g.SetWall(g.Matrix[r][size-1], Right, true)
				}
			case ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q on line %d", ErrMalformed, s[2*c], i+1)
			}
			if c == size {
				break
			}
			switch s[2*c+1] {
			case '.':
				g.Matrix[r][c].Visited = true
			case ' ':
			default:
				return nil, fmt.Errorf("%w: unexpected %q on line %d", ErrMalformed, s[2*c+1], i+1)
			}
		}
	}
	return g, nil
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return g
}
