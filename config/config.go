// Package config holds the tunable game and server constants. Values come from
// the defaults, optionally overlaid by a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

const (
	ENV_CONFIG    = "MAZE_CONFIG"
	ENV_PORT      = "PORT"
	ENV_LOG_LEVEL = "LOG_LEVEL"
)

type Config struct {
	LogLevel string `yaml:"logLevel"`
	Game     Game   `yaml:"game"`
	Server   Server `yaml:"server"`
}

// Game constants. Times are in seconds, lengths in cells or pixels as named.
type Game struct {
	Window           int     `yaml:"window"`
	InitialSize      int     `yaml:"initialSize"`
	Increment        int     `yaml:"increment"`
	WinLimit         int     `yaml:"winLimit"`
	TimeLimit        float64 `yaml:"timeLimit"`
	TimeBoost        float64 `yaml:"timeBoost"`
	WarningThreshold float64 `yaml:"warningThreshold"`
	VisibleZone      int     `yaml:"visibleZone"`
	WallThickness    int     `yaml:"wallThickness"`
	PlayerMargin     int     `yaml:"playerMargin"`
	PlatformMargin   int     `yaml:"platformMargin"`
	ReplayInterval   float64 `yaml:"replayInterval"`
	TicksPerSecond   int     `yaml:"ticksPerSecond"`
}

type Server struct {
	Port int `yaml:"port"`
	// generator steps streamed per second when the client does not ask
	TicksPerSecond int           `yaml:"ticksPerSecond"`
	MaxSize        int           `yaml:"maxSize"`
	MaxSessions    int           `yaml:"maxSessions"`
	Timeout        time.Duration `yaml:"timeout"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: Game{
			Window:           600,
			InitialSize:      10,
			Increment:        5,
			WinLimit:         35,
			TimeLimit:        30,
			TimeBoost:        45,
			WarningThreshold: 10,
			VisibleZone:      2,
			WallThickness:    1,
			PlayerMargin:     5,
			PlatformMargin:   2,
			ReplayInterval:   0.1,
			TicksPerSecond:   60,
		},
		Server: Server{
			Port:           8080,
			TicksPerSecond: 30,
			MaxSize:        100,
			MaxSessions:    16,
			Timeout:        5 * time.Second,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromEnv loads an optional .env file, then the YAML file named by MAZE_CONFIG,
// then applies PORT and LOG_LEVEL on top.
func FromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not loaded: %v", err)
	}

	c := Default()
	if path, ok := os.LookupEnv(ENV_CONFIG); ok && path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	if port, ok := os.LookupEnv(ENV_PORT); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, ENV_PORT, err)
		}
		c.Server.Port = p
	}
	if level, ok := os.LookupEnv(ENV_LOG_LEVEL); ok {
		c.LogLevel = level
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.InitialSize < 2:
		return invalid("game.initialSize must be at least 2, got %d", g.InitialSize)
	case g.Increment < 1:
		return invalid("game.increment must be positive, got %d", g.Increment)
	case g.WinLimit <= g.InitialSize:
		return invalid("game.winLimit %d must exceed game.initialSize %d", g.WinLimit, g.InitialSize)
	case g.Window < g.WinLimit:
		return invalid("game.window %d is too small for %d cells", g.Window, g.WinLimit)
	case g.TimeLimit <= 0:
		return invalid("game.timeLimit must be positive, got %v", g.TimeLimit)
	case g.TimeBoost < 0:
		return invalid("game.timeBoost must not be negative, got %v", g.TimeBoost)
	case g.VisibleZone < 1:
		return invalid("game.visibleZone must be positive, got %d", g.VisibleZone)
	case g.ReplayInterval <= 0:
		return invalid("game.replayInterval must be positive, got %v", g.ReplayInterval)
	case g.TicksPerSecond <= 0:
		return invalid("game.ticksPerSecond must be positive, got %d", g.TicksPerSecond)
	}

	s := c.Server
	switch {
	case s.Port < 1 || s.Port > 65535:
		return invalid("server.port out of range: %d", s.Port)
	case s.TicksPerSecond <= 0:
		return invalid("server.ticksPerSecond must be positive, got %d", s.TicksPerSecond)
	case s.MaxSize < 2:
		return invalid("server.maxSize must be at least 2, got %d", s.MaxSize)
	case s.MaxSessions < 1:
		return invalid("server.maxSessions must be positive, got %d", s.MaxSessions)
	case s.Timeout <= 0:
		return invalid("server.timeout must be positive, got %v", s.Timeout)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return invalid("logLevel: %v", err)
	}
	return nil
}

// SetupLogging applies the configured level to the standard logger.
func (c *Config) SetupLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", c.LogLevel, log.GetLevel())
		return
	}
	log.SetLevel(level)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
