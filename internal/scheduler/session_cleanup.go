// Package scheduler contém os serviços de agendamento da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/market-analyzer-api/internal/config"
)

// SessionCleanupConfig representa a configuração da limpeza de sessões ociosas
type SessionCleanupConfig struct {
	CronSchedule string
	TTL          time.Duration
	Enabled      bool
}

// SessionCleanupService remove periodicamente as sessões sem acesso há mais que o TTL
type SessionCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 SessionCleanupConfig
	sessionRepo            repository.SessionRepository
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
	lastRemoved            int
	now                    func() time.Time
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(sessionRepo repository.SessionRepository, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.Session.CleanupCron,
		TTL:          appConfig.Session.TTL(),
		Enabled:      appConfig.Session.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"ttl":           cleanupConfig.TTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      cleanupConfig,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup remove as sessões ociosas e retorna quantas foram removidas.
// Retorna -1 quando já existe uma limpeza em andamento.
func (s *SessionCleanupService) RunCleanup() int {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return -1
	}
	s.cleanupRunning = true
	s.lastCleanupStartedAt = s.now()
	s.cleanupMutex.Unlock()

	cutoff := s.now().Add(-s.config.TTL)
	removed := s.sessionRepo.DeleteIdleSince(cutoff)

	s.cleanupMutex.Lock()
	s.cleanupRunning = false
	s.lastRemoved = removed
	s.lastCleanupCompletedAt = s.now()
	s.cleanupMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"active":  s.sessionRepo.Count(),
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Limpeza de sessões concluída")

	return removed
}

// TriggerManualSync inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de sessões")
	go s.RunCleanup()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	return map[string]any{
		"cleanup_enabled":           s.config.Enabled,
		"cleanup_cron":              s.config.CronSchedule,
		"session_ttl":               s.config.TTL.String(),
		"cleanup_running":           s.cleanupRunning,
		"active_sessions":           s.sessionRepo.Count(),
		"last_removed":              s.lastRemoved,
		"last_cleanup_started_at":   s.lastCleanupStartedAt,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
	}
}
