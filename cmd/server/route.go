package main

import (
	"github.com/matryer/way"
)

const URI_GENERATE = "/generate/:algorithm"
const URI_MAZE = "/maze/:algorithm/:format"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_GENERATE, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", URI_MAZE, s.GameServer.HandleMazeCall())
}
