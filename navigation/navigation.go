// Package navigation keeps the stack of screens. The top entry is the active
// screen; the root entry is never popped.
package navigation

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/replay"
)

type Kind int

const (
	MAIN_MENU Kind = iota + 1
	MAZE_PLAY
	HOW_TO
	GAME_OVER
	GAME_REPLAY
)

func (k Kind) Name() string {
	switch k {
	case MAIN_MENU:
		return "MAIN_MENU"
	case MAZE_PLAY:
		return "MAZE_PLAY"
	case HOW_TO:
		return "HOW_TO"
	case GAME_OVER:
		return "GAME_OVER"
	case GAME_REPLAY:
		return "GAME_REPLAY"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Args carries what a screen's setup may need. Each screen reads only its
// own fields.
type Args struct {
	Algorithm generator.Algorithm
	Record    replay.Record
	Win       bool
}

// State is the per-screen state record. Kind must match the screen the state
// was built for.
type State interface {
	Kind() Kind
}

// Setup builds a fresh state for one screen.
type Setup[S State] func(args Args) S

type Entry[S State] struct {
	Kind  Kind
	State S
}

type Stack[S State] struct {
	entries []Entry[S]
	setups  map[Kind]Setup[S]
}

// NewStack registers the screen setups and pushes the root screen.
func NewStack[S State](root Kind, setups map[Kind]Setup[S]) *Stack[S] {
	s := &Stack[S]{
		entries: make([]Entry[S], 0, 4),
		setups:  setups,
	}
	s.NavigateTo(root, Args{})
	return s
}

// NavigateTo builds the state of kind from args and pushes it on top of the
// existing entries.
func (s *Stack[S]) NavigateTo(kind Kind, args Args) S {
	setup, ok := s.setups[kind]
	if !ok {
		panic(fmt.Sprintf("navigation: no setup registered for %s", kind.Name()))
	}
	state := setup(args)
	if state.Kind() != kind {
		panic(fmt.Sprintf("navigation: setup for %s built %s state", kind.Name(), state.Kind().Name()))
	}
	s.entries = append(s.entries, Entry[S]{Kind: kind, State: state})
	log.WithFields(log.Fields{"screen": kind.Name(), "depth": len(s.entries)}).Debug("navigate to")
	return state
}

// NavigateBack pops the top entry and returns it.
func (s *Stack[S]) NavigateBack() Entry[S] {
	if len(s.entries) <= 1 {
		panic("navigation: cannot pop the root screen")
	}
	top := s.entries[len(s.entries)-1]
	var zero Entry[S]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	log.WithFields(log.Fields{"screen": top.Kind.Name(), "depth": len(s.entries)}).Debug("navigate back")
	return top
}

// NavigateBackTo pops entries until kind is on top. The target itself stays.
func (s *Stack[S]) NavigateBackTo(kind Kind) {
	found := false
	for _, e := range s.entries {
		if e.Kind == kind {
			found = true
			break
		}
	}
	if !found {
		panic(fmt.Sprintf("navigation: %s is not on the stack", kind.Name()))
	}
	for s.entries[len(s.entries)-1].Kind != kind {
		s.NavigateBack()
	}
}

func (s *Stack[S]) Top() Entry[S] {
	return s.entries[len(s.entries)-1]
}

func (s *Stack[S]) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack[S]) Entries() []Entry[S] {
	return append([]Entry[S](nil), s.entries...)
}
