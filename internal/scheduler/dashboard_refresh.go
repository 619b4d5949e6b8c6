package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/orchestrating"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/sessioning"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

// DashboardRefreshConfig representa a configuração do agendador de atualização do dashboard
type DashboardRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DashboardRefreshService gerencia o agendamento da atualização automática do dashboard
// e centraliza o contador de gerações usado pelas atualizações manuais e agendadas.
type DashboardRefreshService struct {
	scheduler    *gocron.Scheduler
	config       DashboardRefreshConfig
	sessions     sessioning.SessionManager
	orchestrator orchestrating.Orchestrator
	mu           sync.Mutex
	filter       domain.DateRangeFilter
	generation   int
}

// NewDashboardRefreshService cria uma nova instância do serviço de atualização do dashboard
func NewDashboardRefreshService(
	sessions sessioning.SessionManager,
	orchestrator orchestrating.Orchestrator,
	appConfig *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule:   appConfig.AutoRefresh.CronSchedule,
		RefreshEnabled: appConfig.AutoRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler:    scheduler,
		config:       refreshConfig,
		sessions:     sessions,
		orchestrator: orchestrator,
		filter:       domain.DefaultDateRange,
	}
}

// Start inicia o agendador
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização automática do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshTick(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// SetFilter define o filtro de período usado pelas próximas atualizações
func (s *DashboardRefreshService) SetFilter(filter domain.DateRangeFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// Filter retorna o filtro de período corrente
func (s *DashboardRefreshService) Filter() domain.DateRangeFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// RefreshNow dispara uma atualização do dashboard com uma nova geração.
// Atualizações manuais e agendadas passam pelo mesmo caminho, garantindo
// que o contador de gerações seja monotônico.
func (s *DashboardRefreshService) RefreshNow(ctx context.Context) (*domain.DashboardSnapshot, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	filter := s.filter
	s.mu.Unlock()

	// Um ID de correlação por geração amarra os logs das seis leituras
	ctx, _ = log.WithCorrelationID(ctx)

	return s.orchestrator.FetchSnapshot(ctx, filter, s.sessions.Current(), generation)
}

func (s *DashboardRefreshService) refreshTick(ctx context.Context) {
	session := s.sessions.Current()
	if !session.LoggedIn() || !session.IsAdministrator() {
		logrus.Debug("Atualização agendada ignorada: nenhuma sessão de administrador ativa")
		return
	}

	startTime := time.Now()

	snapshot, err := s.RefreshNow(ctx)
	if err != nil {
		if orchestrating.IsStaleGeneration(err) {
			logrus.Info("Atualização agendada descartada por geração mais recente em andamento")
			return
		}

		logrus.WithError(err).Error("Erro na atualização agendada do dashboard")
		return
	}

	logrus.WithFields(logrus.Fields{
		"filter":      snapshot.Filter.QueryValue(),
		"generation":  snapshot.Generation,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Atualização agendada do dashboard concluída")
}
