package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/config"
	"github.com/zucenko/mazewalk/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.SetupLogging()

	s := Server{
		GameServer: server.NewGameServer(cfg.Server),
	}
	go s.GameServer.Loop(context.Background())
	s.routes()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Listening on port %s", port)
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
