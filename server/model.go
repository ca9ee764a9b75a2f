package server

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
)

type GameServer struct {
	Config       config.Server
	GameSessions []*GameSession
	GameRequests chan GameRequest
	Finished     chan *GameSession
	Upgrader     *websocket.Upgrader
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_PAUSE
	GS_ERR
	GS_OVER
)

// GameSession streams the generation of one maze to one observer.
type GameSession struct {
	Id                    string
	State                 GameSessionState
	Params                GenerationParams
	Grid                  *model.Grid
	Generator             generator.Generator
	Steps                 int
	PlayerSession         *PlayerSession
	Errors                chan string
	Events                chan model.ClientMessage
	PlayerConnectRequests chan PlayerConnectRequest
	finished              chan<- *GameSession
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	Id          string
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}
	gameOver    sync.Once

	MessagesToSend chan model.ServerMessage

	// written by the reader, writer and ping handler goroutines
	inMessages  atomic.Int64
	outMessages atomic.Int64
	pings       atomic.Int64
	lastMessage atomic.Int64
}
