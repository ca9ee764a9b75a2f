package server

import (
	"context"
	"encoding/gob"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
)

func NewGameServer(cfg config.Server) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make([]*GameSession, 0),
		GameRequests: make(chan GameRequest),
		Finished:     make(chan *GameSession, cfg.MaxSessions),
		Upgrader:     &websocket.Upgrader{},
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := s.Config.Timeout
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		params, err := ParseParams(way.Param(r.Context(), "algorithm"), r.URL.Query(), s.Config, time.Now().UnixNano())
		if err != nil {
			log.Warnf("HandleHttpCall bad request: %v", err)
			http.Error(w, err.Error(), GAME_INVALIDE.ToHttp())
			return
		}

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{Params: params, GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				log.Warnf("HandleHttpCall GameContextAwaiting <- code:%d", gca.ResponseCode)
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		// the upgrader answers the client itself on failure
		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case gca.GameSession.PlayerConnectRequests <- PlayerConnectRequest{Con: con, GameOver: gameOver}:
		case <-time.After(timeout):
			log.Warn("PlayerConnectRequests TIMEOUTED")
			return
		}

		<-gameOver
		log.WithField("session", gca.GameSession.Id).Info("HandleHttpCall game over")
	}
}

// Loop hands out generation sessions until ctx is cancelled.
func (s *GameServer) Loop(ctx context.Context) {
	log.Printf("GameServer.Loop starting")
	for {
		select {
		case <-ctx.Done():
			log.Printf("GameServer.Loop stopped")
			return
		case gameReq := <-s.GameRequests:
			if len(s.GameSessions) >= s.Config.MaxSessions {
				log.Warnf("GameServer.Loop busy with %d sessions", len(s.GameSessions))
				gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_BUSY}
				continue
			}
			gs := NewGameSession(gameReq.Params, s.Finished)
			go gs.Loop(ctx, s.Config.Timeout)
			s.GameSessions = append(s.GameSessions, gs)
			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		case gs := <-s.Finished:
			for i, other := range s.GameSessions {
				if other == gs {
					s.GameSessions = append(s.GameSessions[:i], s.GameSessions[i+1:]...)
					break
				}
			}
			log.WithField("session", gs.Id).Infof("GameServer.Loop session finished %s", gs.State.Name())
		}
	}
}

func NewGameSession(p GenerationParams, finished chan<- *GameSession) *GameSession {
	grid := generator.NewGrid(p.Algorithm, p.Size)
	return &GameSession{
		Id:                    uuid.NewString(),
		State:                 GS_NEW,
		Params:                p,
		Grid:                  grid,
		Generator:             generator.New(p.Algorithm, grid, rand.New(rand.NewSource(p.Seed))),
		Errors:                make(chan string, 2),
		Events:                make(chan model.ClientMessage, 4),
		PlayerConnectRequests: make(chan PlayerConnectRequest),
		finished:              finished,
	}
}

func (gs *GameSession) Loop(ctx context.Context, connectTimeout time.Duration) {
	logger := log.WithField("session", gs.Id)
	logger.Infof("GameSession.Loop start %s size:%d", gs.Params.Algorithm.Name(), gs.Params.Size)
	defer gs.finish(ctx)

	select {
	case pcr := <-gs.PlayerConnectRequests:
		gs.addPlayer(pcr.Con, pcr.GameOver)
	case <-time.After(connectTimeout):
		logger.Warn("GameSession.Loop nobody connected")
		gs.State = GS_ERR
		return
	case <-ctx.Done():
		return
	}
	gs.State = GS_PLAY
	gs.PlayerSession.State = PS_PLAY
	gs.PlayerSession.MessagesToSend <- gs.MakeGameSetupMessage()

	ticker := time.NewTicker(time.Second / time.Duration(gs.Params.Tps))
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if gs.State != GS_PLAY {
				continue
			}
			frame := gs.Tick()
			done := gs.Generator.Complete()
			gs.PlayerSession.MessagesToSend <- model.ServerMessage{Frames: []model.Frame{frame}, Done: done}
			if done {
				logger.Infof("GameSession.Loop generated in %d steps", gs.Steps)
				gs.State = GS_OVER
				gs.PlayerSession.State = PS_OVER
				return
			}
		case cm := <-gs.Events:
			switch {
			case cm.Stop:
				logger.Info("GameSession.Loop stopped by observer")
				gs.State = GS_OVER
				gs.PlayerSession.State = PS_OVER
				gs.PlayerSession.MessagesToSend <- model.ServerMessage{Done: true}
				return
			case cm.Pause && gs.State == GS_PLAY:
				gs.State = GS_PAUSE
			case !cm.Pause && gs.State == GS_PAUSE:
				gs.State = GS_PLAY
			}
		case id := <-gs.Errors:
			logger.Warnf("killing GS, player %s failed", id)
			gs.State = GS_ERR
			gs.PlayerSession.State = PS_ERR
			return
		case <-ctx.Done():
			return
		}
	}
}

func (gs *GameSession) finish(ctx context.Context) {
	if gs.PlayerSession != nil {
		close(gs.PlayerSession.MessagesToSend)
	}
	select {
	case gs.finished <- gs:
	case <-ctx.Done():
	}
}

func (gs *GameSession) addPlayer(conn *websocket.Conn, gameOver chan struct{}) {
	log.Printf("GameSession.addPlayer")
	ps := &PlayerSession{
		State:          PS_NEW,
		Id:             uuid.NewString(),
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, 16),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ps.pings.Add(1)
			if errors.Is(err, websocket.ErrCloseSent) {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Timeout() {
				return nil
			}
			return err
		})
	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	gs.PlayerSession = ps
}

func (gs *GameSession) MakeGameSetupMessage() model.ServerMessage {
	return model.ServerMessage{
		Setup: []model.Setup{{
			Session:   gs.Id,
			Size:      gs.Params.Size,
			Algorithm: gs.Params.Algorithm.Name(),
			Walls:     gs.Params.Algorithm.InitialWalls(),
		}},
		Frames: []model.Frame{},
	}
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED")
	for {
		messageType, r, err := ps.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			ps.reportError()
			break
		}
		log.Debugf("LoopChannelRead received message type: %d", messageType)
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			ps.reportError()
			break
		}
		ps.lastMessage.Store(time.Now().UnixNano())
		ps.inMessages.Add(1)

		select {
		case ps.GameSession.Events <- cm:
		default:
			log.Warnf("Dropping Data red from socket but.. GameSession.Events FULL")
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// LoopChannelWrite consumes until the session closes MessagesToSend, so the
// session never blocks on a dead connection.
func (ps *PlayerSession) LoopChannelWrite() {
	log.Printf("PlayerSession.LoopChannelWrite STARTED")
	failed := false
	for mes := range ps.MessagesToSend {
		if failed {
			continue
		}
		if err := ps.write(mes); err != nil {
			log.Warnf("PlayerSession.LoopChannelWrite %v", err)
			failed = true
			ps.reportError()
			continue
		}
		ps.outMessages.Add(1)
	}
	if !failed {
		_ = ps.Conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	}
	ps.gameOver.Do(func() { close(ps.GameOver) })
	log.WithFields(ps.Stats()).Info("LoopChannelWrite ENDED")
}

// Stats reports the traffic seen on the connection so far.
func (ps *PlayerSession) Stats() log.Fields {
	fields := log.Fields{
		"player": ps.Id,
		"in":     ps.inMessages.Load(),
		"out":    ps.outMessages.Load(),
		"pings":  ps.pings.Load(),
	}
	if last := ps.lastMessage.Load(); last != 0 {
		fields["lastMessage"] = time.Unix(0, last)
	}
	return fields
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}

func (ps *PlayerSession) reportError() {
	select {
	case ps.GameSession.Errors <- ps.Id:
	default:
	}
}
