package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Request struct {
	Game  *Game  `json:"game"`
	Turn  int    `json:"turn"`
	Board *Board `json:"board"`
	You   *Snake `json:"you"`
}

type Game struct {
	ID      string  `json:"id"`
	Ruleset Ruleset `json:"ruleset"`
	Map     string  `json:"map,omitempty"`
	Timeout int     `json:"timeout"`
	Source  string  `json:"source,omitempty"`
}

type Ruleset struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

var (
	errNoBoard = errors.New("request has no board")
	errNoSnake = errors.New("request has no snake with a body")
)

// Validate checks what the move decision takes for granted.
func (r *Request) Validate() error {
	if r.Board == nil {
		return errNoBoard
	}
	if r.Board.Width <= 0 || r.Board.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", r.Board.Width, r.Board.Height)
	}
	if r.You == nil || len(r.You.Body) == 0 {
		return errNoSnake
	}
	for _, snake := range r.Board.Snakes {
		if len(snake.Body) == 0 {
			return fmt.Errorf("snake %s has no body", snake.ID)
		}
	}
	return nil
}

func (r *Request) GameID() string {
	if r.Game == nil {
		return ""
	}
	return r.Game.ID
}

// NewTurn prepares the move decision of the requesting snake.
func (r *Request) NewTurn(tuning Tuning, logger Logger) *Turn {
	t := NewTurn(r.Board, r.You, tuning)
	t.Logger = logger
	return t
}

var (
	move = flag.Bool("move", false, "read one move request from stdin and print the decision")
)

func main() {
	_ = godotenv.Load()

	bootLogger := NewLogger(os.Stderr, "logfmt", "info")
	cfg, err := LoadConfig(flag.CommandLine, os.Args[1:], func(err error) {
		bootLogger.Warn("ignoring config value", "err", err)
	})
	if err != nil {
		bootLogger.Error("loading config", "err", err)
		os.Exit(2)
	}
	logger := NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	if *move {
		var j Request
		if err := json.NewDecoder(os.Stdin).Decode(&j); err != nil {
			logger.Error("decoding request", "err", err)
			os.Exit(1)
		}
		if err := j.Validate(); err != nil {
			logger.Error("invalid request", "err", err)
			os.Exit(1)
		}
		t := j.NewTurn(cfg.Tuning, logger.With("game", j.GameID(), "turn", j.Turn))
		d := t.Move(rand.New(rand.NewSource(rand.Int63())))
		PrintGrid(os.Stdout, t)
		fmt.Println(d)
		return
	}

	gin.SetMode(cfg.GinMode)
	r := NewServer(cfg, logger)
	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
