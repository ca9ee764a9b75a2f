package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/game"
	"github.com/zucenko/mazewalk/sound"
)

// ENV_LOG_FILE names a file to append logs to; without it logs are dropped
// so they do not scribble over the terminal.
const ENV_LOG_FILE = "MAZE_LOG_FILE"

type Terminal struct {
	screen tcell.Screen
	game   *game.Game
	sounds *sound.Player
	tick   time.Duration
	dt     float64
}

func NewTerminal(cfg *config.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	sounds := sound.New()
	return &Terminal{
		screen: screen,
		game:   game.New(cfg, sounds, rand.New(rand.NewSource(time.Now().UnixNano()))),
		sounds: sounds,
		tick:   time.Second / time.Duration(cfg.Game.TicksPerSecond),
		dt:     1 / float64(cfg.Game.TicksPerSecond),
	}, nil
}

// handleEvent reports false when the player asked to leave.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in, result := MapKey(ev.Key(), ev.Rune())
		switch result {
		case KEY_QUIT:
			return false
		case KEY_INPUT:
			t.game.HandleInput(in)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return !t.game.Quit()
}

func (t *Terminal) draw() {
	w, h := t.screen.Size()
	t.screen.Clear()
	Render(t.game, w, h).Blit(t.screen)
	t.screen.Show()
}

func (t *Terminal) run() {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.game.Update(t.dt)
			t.draw()
		}
	}
}

func (t *Terminal) cleanup() {
	t.sounds.Close()
	t.screen.Fini()
}

func setupLogOutput() (io.Closer, error) {
	path := os.Getenv(ENV_LOG_FILE)
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg.SetupLogging()
	logs, err := setupLogOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer logs.Close()

	t, err := NewTerminal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.cleanup()

	log.Info("terminal started")
	t.run()
}
