package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-analyzer-api/infrastructure/importer"
	"github.com/vfg2006/market-analyzer-api/infrastructure/report"
	"github.com/vfg2006/market-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
	"github.com/vfg2006/market-analyzer-api/internal/api"
	"github.com/vfg2006/market-analyzer-api/internal/config"
	"github.com/vfg2006/market-analyzer-api/internal/scheduler"
	"github.com/vfg2006/market-analyzer-api/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Toda sessão nova herda a tolerância e as metas de participação configuradas
	sessionOptions := []analyzer.Option{
		analyzer.WithDefaultTolerance(cfg.Analysis.DefaultTolerance),
		analyzer.WithShareTargets(cfg.Analysis.ShareTargets()),
	}

	sessionRepo := repository.NewSessionRepository(cfg.Session.MaxSessions, sessionOptions...)
	workbookImporter := importer.NewWorkbookImporter(cfg.Import.HeaderRow, sessionOptions...)
	pdfGenerator := report.NewPDFGenerator()

	analyzerService := analyzing.NewService(sessionRepo, workbookImporter, pdfGenerator, cfg)

	sessionCleanupService := scheduler.NewSessionCleanupService(sessionRepo, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		sessionRepo,
		sessionCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
