package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-manager/internal/middleware"
	taskHTTP "voice-task-manager/internal/task/delivery/http"
	"voice-task-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	timezone    string

	// Optional integrations, reported by /health
	llmEnabled      bool
	calendarEnabled bool

	mw middleware.Middleware

	// Task domain
	taskHandler taskHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Timezone    string

	LLMEnabled      bool
	CalendarEnabled bool

	Middleware middleware.Middleware

	// Task domain
	TaskHandler taskHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		timezone:    cfg.Timezone,
		mw:          cfg.Middleware,
		taskHandler: cfg.TaskHandler,

		llmEnabled:      cfg.LLMEnabled,
		calendarEnabled: cfg.CalendarEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
