// Package analyzing orquestra as sessões de análise: catálogo, leituras do motor,
// importação de planilhas, exportação do ranking e relatório em PDF
package analyzing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/market-analyzer-api/infrastructure/importer"
	"github.com/vfg2006/market-analyzer-api/infrastructure/report"
	"github.com/vfg2006/market-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/market-analyzer-api/internal/analyzer"
	"github.com/vfg2006/market-analyzer-api/internal/config"
	"github.com/vfg2006/market-analyzer-api/internal/domain"
	"github.com/vfg2006/market-analyzer-api/pkg/apiErrors"
)

type Analyzer interface {
	CreateSession() (*domain.SessionInfo, error)
	GetSession(sessionID string) (*domain.SessionSnapshot, error)
	DeleteSession(sessionID string) error
	ClearSession(sessionID string) error
	SetProfile(sessionID string, input domain.ProfileInput) (*domain.ClientProfile, error)

	AddCategoryPeriod(sessionID, category, period string, revenue float64, units int64) error
	EditCategoryPeriod(sessionID, category, period string, revenue float64, units int64) error
	RemoveCategoryPeriod(sessionID, category, period string) error
	RenameCategory(sessionID, category, newName string) error
	RemoveCategory(sessionID, category string) error

	AddSubcategory(sessionID, category, name, period string, revenue float64, units int64) error
	EditSubcategory(sessionID, category, name, newName string, revenue float64, units int64) error
	RemoveSubcategory(sessionID, category, name string) error

	CategorySummaries(sessionID string) ([]domain.CategorySummary, error)
	GenerateRanking(sessionID, category string) ([]domain.RankingEntry, error)
	SimulateScenarios(sessionID, category, subcategory string, targets []domain.ShareTarget) (*domain.ScenarioSimulation, error)
	TicketLimits(sessionID, category, subcategory string) (*domain.TicketLimits, error)
	Trend(sessionID, category string) (*domain.TrendResult, error)
	Confidence(sessionID, category, subcategory string) (*domain.ConfidenceResult, error)
	DetectAnomalies(sessionID, category string) ([]domain.Anomaly, error)
	ActionPlan(sessionID, category string) ([]domain.ActionItem, error)

	ImportWorkbook(sessionID string, r io.Reader) (*domain.ImportSummary, error)
	ExportRanking(sessionID, category, format string) ([]byte, error)
	GenerateReport(sessionID, category, subcategory string) ([]byte, error)
}

type Service struct {
	repository repository.SessionRepository
	importer   importer.Importer
	generator  report.Generator
	cfg        *config.Config
	now        func() time.Time
}

func NewService(
	sessionRepository repository.SessionRepository,
	workbookImporter importer.Importer,
	generator report.Generator,
	cfg *config.Config,
) Analyzer {
	return &Service{
		repository: sessionRepository,
		importer:   workbookImporter,
		generator:  generator,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) CreateSession() (*domain.SessionInfo, error) {
	id, createdAt, err := s.repository.Create()
	if err != nil {
		if errors.Is(err, repository.ErrSessionLimit) {
			return nil, NewAnalysisError(ErrSessionLimit, apiErrors.ErrSessionLimit, "Limite de sessões ativas atingido, tente novamente mais tarde")
		}
		return nil, NewAnalysisError(err, apiErrors.ErrInternalServer, "Falha ao criar sessão")
	}

	logrus.WithFields(logrus.Fields{
		"session_id": id,
		"active":     s.repository.Count(),
	}).Info("Sessão de análise criada")

	return &domain.SessionInfo{
		ID:        id,
		CreatedAt: createdAt,
		ExpiresIn: s.cfg.Session.TTL().String(),
	}, nil
}

func (s *Service) GetSession(sessionID string) (*domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		snapshot = session.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot.ID = sessionID
	return &snapshot, nil
}

func (s *Service) DeleteSession(sessionID string) error {
	if !s.repository.Delete(sessionID) {
		return NewAnalysisErrorWithID(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID, "Sessão não encontrada ou expirada")
	}

	logrus.WithField("session_id", sessionID).Info("Sessão de análise encerrada")
	return nil
}

func (s *Service) ClearSession(sessionID string) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		session.Clear()
		return nil
	})
}

func (s *Service) SetProfile(sessionID string, input domain.ProfileInput) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		var err error
		profile, err = session.SetProfile(input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *Service) AddCategoryPeriod(sessionID, category, period string, revenue float64, units int64) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		return session.Market().Add(category, period, revenue, units)
	})
}

func (s *Service) EditCategoryPeriod(sessionID, category, period string, revenue float64, units int64) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		found, err := session.Market().Edit(category, period, revenue, units)
		if err != nil {
			return err
		}
		if !found {
			return notFound(ErrPeriodNotFound, fmt.Sprintf("Período %s não encontrado em %s", period, category))
		}
		return nil
	})
}

func (s *Service) RemoveCategoryPeriod(sessionID, category, period string) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		if !session.RemoveCategoryPeriod(category, period) {
			return notFound(ErrPeriodNotFound, fmt.Sprintf("Período %s não encontrado em %s", period, category))
		}
		return nil
	})
}

func (s *Service) RenameCategory(sessionID, category, newName string) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		found, err := session.RenameCategory(category, newName)
		if err != nil {
			return err
		}
		if !found {
			return notFound(ErrCategoryNotFound, fmt.Sprintf("Categoria %s não encontrada", category))
		}
		return nil
	})
}

func (s *Service) RemoveCategory(sessionID, category string) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		if !session.RemoveCategory(category) {
			return notFound(ErrCategoryNotFound, fmt.Sprintf("Categoria %s não encontrada", category))
		}
		return nil
	})
}

// AddSubcategory cadastra o agregado de 6 meses ou, com período, um lançamento mensal
func (s *Service) AddSubcategory(sessionID, category, name, period string, revenue float64, units int64) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		if strings.TrimSpace(period) == "" {
			return session.Subcategories().Add(category, name, revenue, units)
		}
		return session.Subcategories().AddPeriod(category, name, period, revenue, units)
	})
}

func (s *Service) EditSubcategory(sessionID, category, name, newName string, revenue float64, units int64) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		found, err := session.Subcategories().Edit(category, name, newName, revenue, units)
		if err != nil {
			return err
		}
		if !found {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", name, category))
		}
		return nil
	})
}

func (s *Service) RemoveSubcategory(sessionID, category, name string) error {
	return s.withSession(sessionID, func(session *analyzer.Session) error {
		if !session.Subcategories().Remove(category, name) {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", name, category))
		}
		return nil
	})
}

func (s *Service) CategorySummaries(sessionID string) ([]domain.CategorySummary, error) {
	var summaries []domain.CategorySummary

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		summaries = session.CategorySummaries()
		return nil
	})

	return summaries, err
}

// GenerateRanking com categoria vazia ranqueia todas as categorias
func (s *Service) GenerateRanking(sessionID, category string) ([]domain.RankingEntry, error) {
	var ranking []domain.RankingEntry

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		ranking = session.GenerateRanking(category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ranking == nil {
		ranking = []domain.RankingEntry{}
	}
	return ranking, nil
}

func (s *Service) SimulateScenarios(sessionID, category, subcategory string, targets []domain.ShareTarget) (*domain.ScenarioSimulation, error) {
	var simulation *domain.ScenarioSimulation

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		simulation = session.SimulateScenarios(category, subcategory, targets)
		if simulation == nil {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", subcategory, category))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return simulation, nil
}

func (s *Service) TicketLimits(sessionID, category, subcategory string) (*domain.TicketLimits, error) {
	var limits *domain.TicketLimits

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		limits = session.TicketLimits(category, subcategory)
		if limits == nil {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", subcategory, category))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return limits, nil
}

func (s *Service) Trend(sessionID, category string) (*domain.TrendResult, error) {
	var trend domain.TrendResult

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		trend = session.Trend(category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &trend, nil
}

func (s *Service) Confidence(sessionID, category, subcategory string) (*domain.ConfidenceResult, error) {
	var confidence *domain.ConfidenceResult

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		confidence = session.Confidence(category, subcategory)
		if confidence == nil {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", subcategory, category))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confidence, nil
}

func (s *Service) DetectAnomalies(sessionID, category string) ([]domain.Anomaly, error) {
	var anomalies []domain.Anomaly

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		anomalies = session.DetectAnomalies(category)
		return nil
	})

	return anomalies, err
}

func (s *Service) ActionPlan(sessionID, category string) ([]domain.ActionItem, error) {
	var plan []domain.ActionItem

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		plan = session.ActionPlan(category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if plan == nil {
		plan = []domain.ActionItem{}
	}
	return plan, nil
}

// ImportWorkbook monta uma sessão nova a partir da planilha e troca a sessão do chamador.
// Se a importação falhar a sessão atual fica intacta.
func (s *Service) ImportWorkbook(sessionID string, r io.Reader) (*domain.ImportSummary, error) {
	entry := logrus.WithField("session_id", sessionID)

	imported, summary, err := s.importer.Import(r)
	if err != nil {
		entry.WithError(err).Warn("Falha ao importar planilha")
		return nil, NewAnalysisErrorWithID(ErrImportFailed, apiErrors.ErrImportFailed, sessionID, err.Error())
	}

	if err := s.repository.Replace(sessionID, imported); err != nil {
		return nil, s.translate(sessionID, err)
	}

	summary.SessionID = sessionID
	summary.ImportedAt = s.now()

	entry.WithFields(logrus.Fields{
		"category_periods": summary.CategoryPeriods,
		"subcategories":    summary.Subcategories,
		"warnings":         len(summary.Warnings),
	}).Info("Planilha importada com sucesso")

	return summary, nil
}

func (s *Service) ExportRanking(sessionID, category, format string) ([]byte, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != report.FormatCSV && format != report.FormatXLSX {
		return nil, NewAnalysisErrorWithID(ErrUnsupportedFormat, apiErrors.ErrInvalidRequest, sessionID, "Formatos aceitos: csv, xlsx")
	}

	ranking, err := s.GenerateRanking(sessionID, category)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteRanking(&buf, format, ranking); err != nil {
		logrus.WithField("session_id", sessionID).WithError(err).Error("Erro ao exportar ranking")
		return nil, NewAnalysisErrorWithID(ErrExportFailed, apiErrors.ErrReportGeneration, sessionID, err.Error())
	}

	return buf.Bytes(), nil
}

// GenerateReport coleta os dados sob o lock da sessão e renderiza o PDF fora dele
func (s *Service) GenerateReport(sessionID, category, subcategory string) ([]byte, error) {
	var data *domain.ReportData

	err := s.withSession(sessionID, func(session *analyzer.Session) error {
		data = session.Report(category, subcategory)
		if data == nil {
			return notFound(ErrSubcategoryNotFound, fmt.Sprintf("Subcategoria %s não encontrada em %s", subcategory, category))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	data.GeneratedAt = s.now()

	var buf bytes.Buffer
	if err := s.generator.Generate(&buf, data); err != nil {
		logrus.WithField("session_id", sessionID).WithError(err).Error("Erro ao gerar relatório")
		return nil, NewAnalysisErrorWithID(ErrReportGeneration, apiErrors.ErrReportGeneration, sessionID, err.Error())
	}

	return buf.Bytes(), nil
}

func (s *Service) withSession(sessionID string, fn func(session *analyzer.Session) error) error {
	if err := s.repository.WithSession(sessionID, fn); err != nil {
		return s.translate(sessionID, err)
	}
	return nil
}

// translate converte erros do repositório e do motor em AnalysisError com código de API
func (s *Service) translate(sessionID string, err error) error {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		if analysisErr.SessionID == "" {
			analysisErr.SessionID = sessionID
		}
		return analysisErr
	}

	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return NewAnalysisErrorWithID(ErrSessionNotFound, apiErrors.ErrSessionNotFound, sessionID, "Sessão não encontrada ou expirada")
	case errors.Is(err, analyzer.ErrEmptyName):
		return NewAnalysisErrorWithID(ErrInvalidInput, apiErrors.ErrMissingRequiredData, sessionID, err.Error())
	case errors.Is(err, analyzer.ErrInvalidNumber), errors.Is(err, analyzer.ErrOutOfRange):
		return NewAnalysisErrorWithID(ErrInvalidInput, apiErrors.ErrInvalidFormat, sessionID, err.Error())
	case errors.Is(err, analyzer.ErrDuplicatePeriod),
		errors.Is(err, analyzer.ErrDuplicateSubcategory),
		errors.Is(err, analyzer.ErrDuplicateCategory):
		return NewAnalysisErrorWithID(ErrDuplicateEntry, apiErrors.ErrConflict, sessionID, err.Error())
	}

	logrus.WithField("session_id", sessionID).WithError(err).Error("Erro inesperado na sessão de análise")
	return NewAnalysisErrorWithID(err, apiErrors.ErrInternalServer, sessionID, "")
}

func notFound(err error, details string) *AnalysisError {
	return NewAnalysisError(err, apiErrors.ErrResourceNotFound, details)
}
