package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"study-assistant/internal/extract"
	"study-assistant/internal/intent"
	"study-assistant/pkg/gcalendar"
	"study-assistant/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infra
	postgresDB *pgxpool.Pool

	// Chat pipeline
	resolver  *intent.Resolver
	extractor *extract.Extractor
	loc       *time.Location

	// Calendar mirror, nil when disabled
	calendar   *gcalendar.Client
	calendarID string

	chatRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *pgxpool.Pool

	Resolver  *intent.Resolver
	Extractor *extract.Extractor
	Location  *time.Location

	Calendar   *gcalendar.Client
	CalendarID string

	ChatRateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		postgresDB:     cfg.PostgresDB,
		resolver:       cfg.Resolver,
		extractor:      cfg.Extractor,
		loc:            cfg.Location,
		calendar:       cfg.Calendar,
		calendarID:     cfg.CalendarID,
		chatRatePerMin: cfg.ChatRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.resolver == nil {
		return errors.New("intent resolver is required")
	}
	if srv.extractor == nil {
		return errors.New("extractor is required")
	}
	if srv.loc == nil {
		return errors.New("location is required")
	}
	return nil
}

// Run maps handlers and serves until ctx is cancelled, then shuts down
// gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
