package server

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

const DEFAULT_SIZE = 10
const MAX_TPS = 1000

type ResponseCode int

const (
	GAME_READY ResponseCode = iota
	GAME_NOT_FOUND
	GAME_INVALIDE
	GAME_BUSY
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case GAME_READY:
		return HTTP_SUCCESS
	case GAME_NOT_FOUND:
		return HTTP_NOT_FOUND
	case GAME_INVALIDE:
		return HTTP_BAD_REQUEST
	case GAME_BUSY:
		return HTTP_TIMEOUT
	default:
		panic(h)
	}
}

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_PAUSE:
		return "GS_PAUSE"
	case GS_ERR:
		return "GS_ERR"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

func (ps PlayerSessionState) Name() string {
	switch ps {
	case PS_NEW:
		return "NEW"
	case PS_PLAY:
		return "PLAY"
	case PS_OVER:
		return "OVER"
	case PS_ERR:
		return "ERR"
	default:
		return "N/A"
	}
}

// GenerationParams selects what a session generates and how fast.
type GenerationParams struct {
	Algorithm generator.Algorithm
	Size      int
	Seed      int64
	Tps       int
}

// ParseParams reads size, seed and tps from the query. Missing values fall
// back to defaults; seed defaults to fallbackSeed.
func ParseParams(algorithm string, q url.Values, cfg config.Server, fallbackSeed int64) (GenerationParams, error) {
	alg, err := generator.ParseAlgorithm(algorithm)
	if err != nil {
		return GenerationParams{}, err
	}
	p := GenerationParams{Algorithm: alg, Size: DEFAULT_SIZE, Seed: fallbackSeed, Tps: cfg.TicksPerSecond}
	if v := q.Get("size"); v != "" {
		if p.Size, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("size: %w", err)
		}
	}
	if v := q.Get("seed"); v != "" {
		if p.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return p, fmt.Errorf("seed: %w", err)
		}
	}
	if v := q.Get("tps"); v != "" {
		if p.Tps, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("tps: %w", err)
		}
	}
	if p.Size < 2 || p.Size > cfg.MaxSize {
		return p, fmt.Errorf("size %d out of range 2..%d", p.Size, cfg.MaxSize)
	}
	if p.Tps < 1 || p.Tps > MAX_TPS {
		return p, fmt.Errorf("tps %d out of range 1..%d", p.Tps, MAX_TPS)
	}
	return p, nil
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
}

type GameRequest struct {
	Params              GenerationParams
	GameContextAwaiting chan GameContextAwaiting
}

type PlayerConnectRequest struct {
	Con      *websocket.Conn
	GameOver chan struct{}
}
