package main // import "github.com/tonobo/battlesnake-weighted"

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg     *Config
	logger  Logger
	archive *Archive
	// newRand returns the tie break source of one move.
	newRand func() Rand
}

// NewServer wires the battlesnake API onto a gin engine.
func NewServer(cfg *Config, logger Logger) *gin.Engine {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		archive: NewArchive(cfg.RequestLogDir),
		newRand: func() Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	return s.Engine()
}

func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/", s.info)
	r.POST("/start", s.start)
	r.POST("/end", s.end)
	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	r.POST("/move", s.move)
	return r
}

func requestLogger(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apiversion": "1",
		"author":     s.cfg.Author,
		"color":      s.cfg.Color,
		"head":       s.cfg.Head,
		"tail":       s.cfg.Tail,
		"version":    "1.0.0",
	})
}

// bind decodes and validates a game state, answering 400 on failure.
func (s *Server) bind(c *gin.Context) (*Request, bool) {
	var j Request
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if err := j.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &j, true
}

func (s *Server) logFor(j *Request) Logger {
	return s.logger.With("game", j.GameID(), "turn", j.Turn, "snake", j.You.ID)
}

func (s *Server) start(c *gin.Context) {
	j, ok := s.bind(c)
	if !ok {
		return
	}
	s.logFor(j).Info("game started", "width", j.Board.Width, "height", j.Board.Height, "snakes", len(j.Board.Snakes))
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) end(c *gin.Context) {
	j, ok := s.bind(c)
	if !ok {
		return
	}
	logger := s.logFor(j)
	if err := s.archive.Append(j); err != nil {
		logger.Warn("archiving request", "err", err)
	}
	logger.Info("game over", "health", j.You.Health, "length", j.You.Size())
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) move(c *gin.Context) {
	j, ok := s.bind(c)
	if !ok {
		return
	}
	logger := s.logFor(j)
	if err := s.archive.Append(j); err != nil {
		logger.Warn("archiving request", "err", err)
	}
	d := j.NewTurn(s.cfg.Tuning, logger).Move(s.newRand())
	logger.Info("move", "direction", d)
	c.JSON(http.StatusOK, gin.H{"move": d, "shout": ""})
}
