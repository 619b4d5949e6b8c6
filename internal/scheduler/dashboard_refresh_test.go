package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

type stubSessions struct {
	current *domain.Session
}

func (s *stubSessions) Restore() *domain.Session { return s.current }
func (s *stubSessions) Current() *domain.Session { return s.current }
func (s *stubSessions) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	return s.current, nil
}
func (s *stubSessions) Register(ctx context.Context, profile domain.RegisterProfile) error {
	return nil
}
func (s *stubSessions) Logout() { s.current = nil }

type recordingOrchestrator struct {
	mu          sync.Mutex
	generations []int
	filters     []domain.DateRangeFilter
}

func (o *recordingOrchestrator) FetchSnapshot(ctx context.Context, filter domain.DateRangeFilter, session *domain.Session, generation int) (*domain.DashboardSnapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.generations = append(o.generations, generation)
	o.filters = append(o.filters, filter)
	return &domain.DashboardSnapshot{Filter: filter, Generation: generation}, nil
}

func (o *recordingOrchestrator) LastSnapshot() *domain.DashboardSnapshot { return nil }
func (o *recordingOrchestrator) Busy() bool                              { return false }

func TestDashboardRefreshService_RefreshNow(t *testing.T) {
	log.SetupTestLogger()

	sessions := &stubSessions{current: &domain.Session{Token: "tok", Role: domain.RoleAdministrator}}
	orchestrator := &recordingOrchestrator{}

	service := NewDashboardRefreshService(sessions, orchestrator, &config.Config{})

	first, err := service.RefreshNow(context.Background())
	require.NoError(t, err)

	second, err := service.RefreshNow(context.Background())
	require.NoError(t, err)

	// Cada atualização recebe uma geração estritamente maior
	assert.Equal(t, 1, first.Generation)
	assert.Equal(t, 2, second.Generation)
	assert.Equal(t, []int{1, 2}, orchestrator.generations)
}

func TestDashboardRefreshService_SetFilter(t *testing.T) {
	log.SetupTestLogger()

	sessions := &stubSessions{current: &domain.Session{Token: "tok", Role: domain.RoleAdministrator}}
	orchestrator := &recordingOrchestrator{}

	service := NewDashboardRefreshService(sessions, orchestrator, &config.Config{})
	assert.Equal(t, domain.DefaultDateRange, service.Filter())

	service.SetFilter(domain.YearToDate)
	assert.Equal(t, domain.YearToDate, service.Filter())

	// Troca de recorte vale para a próxima atualização e gera nova geração
	snapshot, err := service.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.YearToDate, snapshot.Filter)
	assert.Equal(t, []domain.DateRangeFilter{domain.YearToDate}, orchestrator.filters)
}

func TestDashboardRefreshService_TickRequiresAdminSession(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name    string
		session *domain.Session
		fetches int
	}{
		{name: "Sem sessão não dispara busca", session: nil, fetches: 0},
		{name: "Perfil cliente não dispara busca", session: &domain.Session{Token: "tok", Role: domain.RoleCustomer}, fetches: 0},
		{name: "Administrador dispara busca", session: &domain.Session{Token: "tok", Role: domain.RoleAdministrator}, fetches: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orchestrator := &recordingOrchestrator{}
			service := NewDashboardRefreshService(&stubSessions{current: tt.session}, orchestrator, &config.Config{})

			service.refreshTick(context.Background())

			assert.Len(t, orchestrator.generations, tt.fetches)
		})
	}
}

func TestDashboardRefreshService_StartDisabled(t *testing.T) {
	log.SetupTestLogger()

	cfg := &config.Config{
		AutoRefresh: config.AutoRefresh{CronSchedule: "*/5 * * * *", Enabled: false},
	}

	service := NewDashboardRefreshService(&stubSessions{}, &recordingOrchestrator{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, service.Start(ctx))
}
