package server

import (
	"bytes"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazewalk/generator"
	"github.com/zucenko/mazewalk/model"
	"github.com/zucenko/mazewalk/snapshot"
)

const DEFAULT_CELL_PIXELS = 16
const MAX_CELL_PIXELS = 64

// Generate builds a complete maze in one go.
func Generate(p GenerationParams) *model.Grid {
	grid := generator.NewGrid(p.Algorithm, p.Size)
	generator.Run(generator.New(p.Algorithm, grid, rand.New(rand.NewSource(p.Seed))))
	return grid
}

// HandleMazeCall answers with a finished maze as text or PNG.
func (s *GameServer) HandleMazeCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		params, err := ParseParams(way.Param(ctx, "algorithm"), r.URL.Query(), s.Config, time.Now().UnixNano())
		if err != nil {
			http.Error(w, err.Error(), GAME_INVALIDE.ToHttp())
			return
		}
		format := way.Param(ctx, "format")
		if format != "txt" && format != "png" {
			http.Error(w, "unknown format "+format, GAME_NOT_FOUND.ToHttp())
			return
		}

		grid := Generate(params)
		log.WithFields(log.Fields{
			"algorithm": params.Algorithm.Name(),
			"size":      params.Size,
			"seed":      params.Seed,
		}).Info("HandleMazeCall generated")
		w.Header().Set("X-Maze-Seed", strconv.FormatInt(params.Seed, 10))

		if format == "txt" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = io.WriteString(w, model.Format(grid))
			return
		}

		cell := DEFAULT_CELL_PIXELS
		if v := r.URL.Query().Get("cell"); v != "" {
			if cell, err = strconv.Atoi(v); err != nil || cell > MAX_CELL_PIXELS {
				http.Error(w, "bad cell size "+v, GAME_INVALIDE.ToHttp())
				return
			}
		}
		var buf bytes.Buffer
		if err := snapshot.Encode(&buf, grid, cell); err != nil {
			http.Error(w, err.Error(), GAME_INVALIDE.ToHttp())
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}
}
