package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/antoinemeret/recipeparse/internal/config"
	"github.com/antoinemeret/recipeparse/internal/logging"
	"github.com/antoinemeret/recipeparse/internal/monitoring"
	"github.com/antoinemeret/recipeparse/internal/parser"
)

const version = "1.0.0"

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	parser  *parser.Parser
	metrics *monitoring.Metrics
	log     *logging.Logger
	cfg     *config.Config
}

// New creates a server with the full middleware chain and routes wired.
func New(cfg *config.Config, log *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NewNop()
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:  gin.New(),
		parser:  parser.New(log),
		metrics: monitoring.NewMetrics(),
		log:     log,
		cfg:     cfg,
	}

	s.router.Use(gin.Recovery())
	s.router.Use(requestLogger(log))
	s.router.Use(monitoring.Middleware(s.metrics))
	s.router.Use(cors.Default())
	if cfg.RateLimit.Enabled {
		s.router.Use(rateLimiter(cfg.RateLimit))
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}),
	))

	api := s.router.Group("/api")
	api.POST("/parse", s.handleParse)
}

// parseRequest is the body accepted by POST /api/parse.
type parseRequest struct {
	HTML string `json:"html" binding:"required"`
	URL  string `json:"url"`
}

func (s *Server) handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "html field is required"})
		return
	}

	start := time.Now()
	result := s.parser.Parse(c.Request.Context(), req.HTML, req.URL)
	s.metrics.RecordParse(string(result.Method), result.Success, time.Since(start))

	// Failed extractions are still well-formed results; the caller reads
	// the success flag to decide on a fallback extractor.
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "recipeparse",
		"version": version,
	})
}

// Router exposes the gin engine, primarily for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.log.Info("server listening", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// requestLogger logs one line per completed request.
func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
