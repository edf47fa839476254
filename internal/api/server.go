package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-analyzer-api/internal/api/handler"
	"github.com/vfg2006/market-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/market-analyzer-api/internal/config"
	"github.com/vfg2006/market-analyzer-api/internal/scheduler"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/market-analyzer-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// NewHandler monta as rotas e a cadeia de middlewares da API
func NewHandler(
	config *config.Config,
	analyzer analyzing.Analyzer,
	sessions handler.SessionCounter,
	sessionCleanupService *scheduler.SessionCleanupService,
) http.Handler {
	cronServices := handler.CronJobServices{
		SessionCleanupService: sessionCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(sessions)...),
		router.WithRoutes(handler.Sessions(analyzer)...),
		router.WithRoutes(handler.Catalog(analyzer)...),
		router.WithRoutes(handler.Analysis(analyzer)...),
		router.WithRoutes(handler.Files(analyzer, config.Import.MaxUploadBytes())...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	sessions handler.SessionCounter,
	sessionCleanupService *scheduler.SessionCleanupService,
) (*Server, error) {
	if config.Server.Port == "" {
		return nil, fmt.Errorf("porta do servidor não configurada")
	}

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, sessions, sessionCleanupService),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       config.Server.ReadTimeout,
			WriteTimeout:      config.Server.WriteTimeout,
		},
		shutdownTimeout: shutdownTimeout,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
