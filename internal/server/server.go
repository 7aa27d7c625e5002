// Package server exposes circuit.Circuit over HTTP: POST a circuit
// spec and get back a job ID, GET that ID back and get the resulting
// histogram. Grounded on the teacher's gin-based internal/app +
// internal/server/router split (ShouldBindJSON request structs,
// gin.H error bodies, a routes table), collapsed into a single package
// since the teacher's separate router/template-rendering layer existed
// to serve a root HTML page and pick between runner backends, neither
// of which this spec's two JSON endpoints need.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/qplay/internal/config"
	"github.com/kegliz/qplay/internal/logger"
)

// Server wires the HTTP routes to an in-memory job store.
type Server struct {
	log   *logger.Logger
	cfg   *config.Config
	store *histogramStore
}

// New returns a Server using cfg's default shot count when a request
// omits one, logging through log.
func New(cfg *config.Config, log *logger.Logger) *Server {
	return &Server{log: log.SpawnForService("server"), cfg: cfg, store: newHistogramStore()}
}

// Engine builds a gin.Engine with the server's routes registered.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/circuits", s.submitCircuit)
	r.GET("/circuits/:id", s.getHistogram)
	return r
}

// ListenAndServe runs the server's gin engine on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Msg("server listening")
	return s.Engine().Run(addr)
}

func (s *Server) submitCircuit(c *gin.Context) {
	var req CircuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Shots == 0 {
		req.Shots = s.cfg.Simulator.DefaultShots
	}

	circ, err := buildCircuit(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := circ.Execute(req.Shots); err != nil {
		s.log.Error().Err(err).Msg("circuit execution failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	hist, err := circ.HistogramString()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := s.store.put(req.Shots, hist)
	s.log.Info().Str("id", id).Int("shots", req.Shots).Int("ops", circ.Ops()).Msg("circuit executed")
	c.JSON(http.StatusCreated, SubmitResponse{ID: id})
}

func (s *Server) getHistogram(c *gin.Context) {
	id := c.Param("id")
	j, err := s.store.get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, HistogramResponse{ID: id, Shots: j.shots, Histogram: j.histogram})
}
