package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	logger *slog.Logger

	mu     sync.Mutex
	server *http.Server
}

type Option func(*ControllerPool)

func WithLogger(logger *slog.Logger) Option {
	return func(p *ControllerPool) {
		p.logger = logger
	}
}

// WithMiddleware installs handlers on the engine before any route.
func WithMiddleware(mw ...gin.HandlerFunc) Option {
	return func(p *ControllerPool) {
		p.engine.Use(mw...)
	}
}

func NewControllerPool(opts ...Option) *ControllerPool {
	engine := gin.New()
	engine.Use(gin.Recovery())

	p := &ControllerPool{
		pool:   make([]Controller, 0, 10),
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rg = engine.Group(apiPrefix)
	return p
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// Fallback handles every request no controller matched.
func (pool *ControllerPool) Fallback(h gin.HandlerFunc) {
	pool.engine.NoRoute(h)
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// RunAll serves until Shutdown is called. It returns nil after a clean shutdown.
func (pool *ControllerPool) RunAll(host string, port string) error {
	server := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           pool.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	pool.mu.Lock()
	pool.server = server
	pool.mu.Unlock()

	pool.logger.Info("http server listening", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (pool *ControllerPool) Shutdown(ctx context.Context) error {
	pool.mu.Lock()
	server := pool.server
	pool.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
