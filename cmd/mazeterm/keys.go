package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zucenko/mazewalk/game"
)

type KeyResult int

const (
	KEY_IGNORED KeyResult = iota
	KEY_INPUT
	KEY_QUIT
)

// MapKey translates a terminal key press into a game input. Arrows and
// hjkl move, space and enter confirm, r replays; q, Esc and Ctrl-C quit.
func MapKey(key tcell.Key, r rune) (game.Input, KeyResult) {
	switch key {
	case tcell.KeyUp:
		return game.Key(game.UP), KEY_INPUT
	case tcell.KeyRight:
		return game.Key(game.RIGHT), KEY_INPUT
	case tcell.KeyDown:
		return game.Key(game.DOWN), KEY_INPUT
	case tcell.KeyLeft:
		return game.Key(game.LEFT), KEY_INPUT
	case tcell.KeyEnter:
		return game.Key(game.CONFIRM), KEY_INPUT
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Input{}, KEY_QUIT
	case tcell.KeyRune:
		switch r {
		case 'k':
			return game.Key(game.UP), KEY_INPUT
		case 'l':
			return game.Key(game.RIGHT), KEY_INPUT
		case 'j':
			return game.Key(game.DOWN), KEY_INPUT
		case 'h':
			return game.Key(game.LEFT), KEY_INPUT
		case ' ':
			return game.Key(game.CONFIRM), KEY_INPUT
		case 'r', 'R':
			return game.Key(game.REPLAY), KEY_INPUT
		case 'q', 'Q':
			return game.Input{}, KEY_QUIT
		}
	}
	return game.Input{}, KEY_IGNORED
}
