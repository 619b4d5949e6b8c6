package orchestrating

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/mocks"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/repository"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/sessioning"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
	"go.uber.org/mock/gomock"
)

type fakeRevoker struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeRevoker) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
}

func (f *fakeRevoker) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func adminSession() *domain.Session {
	return &domain.Session{Token: "tok-admin", Role: domain.RoleAdministrator, DisplayName: "Alice"}
}

func expectAllDatasets(m *mocks.MockIntegrator) {
	m.EXPECT().FetchKPIs(gomock.Any(), "tok-admin", domain.Last30Days).
		Return(&domain.KPISummary{TotalSales: 1000, TotalOrders: 10, AverageTicket: 100}, nil).AnyTimes()
	m.EXPECT().FetchFinancialSeries(gomock.Any(), "tok-admin", domain.Last30Days).
		Return([]domain.FinancialPeriod{{Month: "2026-07", Sales: 500, Costs: 300, Profit: 200}}, nil).AnyTimes()
	m.EXPECT().FetchCategoryProfitability(gomock.Any(), "tok-admin", domain.Last30Days).
		Return([]domain.CategoryProfit{{Category: "Bikes", NetProfit: 120}}, nil).AnyTimes()
	m.EXPECT().FetchTopCustomers(gomock.Any(), "tok-admin", domain.Last30Days).
		Return([]domain.TopCustomer{{Customer: "Contoso Ltd", TotalPurchased: 900}}, nil).AnyTimes()
	m.EXPECT().FetchGeoCustomers(gomock.Any(), "tok-admin", domain.Last30Days).
		Return([]domain.GeoRecord{{Country: "Chile", Region: "RM", CustomerCount: 7}}, nil).AnyTimes()
	m.EXPECT().FetchRecentOrders(gomock.Any(), "tok-admin", domain.Last30Days).
		Return([]domain.Order{{OrderKey: 42, Date: "2026-07-01", Customer: "Contoso Ltd", Total: 99.9}}, nil).AnyTimes()
}

func TestService_FetchSnapshot_RoleGate(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhum EXPECT: qualquer chamada ao integrador falha o teste
	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	revoker := &fakeRevoker{}
	service := NewService(mockIntegrator, revoker)

	tests := []struct {
		name    string
		session *domain.Session
	}{
		{name: "Sessão ausente", session: nil},
		{name: "Perfil de cliente", session: &domain.Session{Token: "tok", Role: domain.RoleCustomer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := service.FetchSnapshot(context.Background(), domain.Last30Days, tt.session, 1)

			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, ErrPerfilSemAcesso)
			assert.Nil(t, service.LastSnapshot())
			assert.Equal(t, 0, revoker.Calls())
		})
	}
}

func TestService_FetchSnapshot_Success(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	expectAllDatasets(mockIntegrator)

	service := NewService(mockIntegrator, &fakeRevoker{})

	snapshot, err := service.FetchSnapshot(context.Background(), domain.Last30Days, adminSession(), 1)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, domain.Last30Days, snapshot.Filter)
	assert.Equal(t, 1, snapshot.Generation)
	assert.Equal(t, 1000.0, snapshot.KPIs.TotalSales)
	assert.Len(t, snapshot.Financial, 1)
	assert.Len(t, snapshot.CategoryProfits, 1)
	assert.Len(t, snapshot.TopCustomers, 1)
	assert.Len(t, snapshot.GeoCustomers, 1)
	assert.Len(t, snapshot.RecentOrders, 1)
	assert.False(t, snapshot.FetchedAt.IsZero())
	assert.Equal(t, snapshot, service.LastSnapshot())
	assert.False(t, service.Busy())
}

func TestService_FetchSnapshot_AllOrNothing(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	mockIntegrator.EXPECT().FetchKPIs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.KPISummary{TotalSales: 1000}, nil).AnyTimes()
	mockIntegrator.EXPECT().FetchFinancialSeries(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.FinancialPeriod{{Month: "2026-07"}}, nil).AnyTimes()
	mockIntegrator.EXPECT().FetchCategoryProfitability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.CategoryProfit{{Category: "Bikes"}}, nil).AnyTimes()
	mockIntegrator.EXPECT().FetchGeoCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.GeoRecord{{Country: "Chile"}}, nil).AnyTimes()
	mockIntegrator.EXPECT().FetchRecentOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Order{{OrderKey: 42}}, nil).AnyTimes()

	// Uma única leitura falha e derruba a geração inteira
	mockIntegrator.EXPECT().FetchTopCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, "timeout"))

	revoker := &fakeRevoker{}
	service := NewService(mockIntegrator, revoker)

	snapshot, err := service.FetchSnapshot(context.Background(), domain.Last30Days, adminSession(), 1)

	assert.Nil(t, snapshot)
	assert.Error(t, err)
	assert.True(t, IsUnreachable(err))

	var orchErr *OrchestrationError
	assert.True(t, errors.As(err, &orchErr))
	assert.Equal(t, "/top-clientes", orchErr.Dataset)
	assert.Equal(t, 1, orchErr.Generation)

	assert.Nil(t, service.LastSnapshot())
	assert.Equal(t, 0, revoker.Calls())
}

func TestService_FetchSnapshot_UnauthorizedRevokesSession(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	expired := apierrors.FromStatusCode(401, "token inválido")

	mockIntegrator.EXPECT().FetchKPIs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchFinancialSeries(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchCategoryProfitability(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchTopCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchGeoCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchRecentOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expired).AnyTimes()

	revoker := &fakeRevoker{}
	service := NewService(mockIntegrator, revoker)

	snapshot, err := service.FetchSnapshot(context.Background(), domain.Last30Days, adminSession(), 1)

	assert.Nil(t, snapshot)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, 1, revoker.Calls())
	assert.Nil(t, service.LastSnapshot())
}

// Uma leitura autenticada que recebe 401 derruba a sessão inteira: memória e
// credenciais persistidas, de modo que um Restore subsequente devolve nada
func TestService_FetchSnapshot_UnauthorizedClearsPersistedSession(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	expired := apierrors.FromStatusCode(401, "token inválido")
	mockIntegrator.EXPECT().FetchKPIs(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchFinancialSeries(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchCategoryProfitability(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchTopCustomers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchGeoCustomers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()
	mockIntegrator.EXPECT().FetchRecentOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, expired).AnyTimes()

	sessionRepo := repository.NewFileSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	sessions := sessioning.NewService(sessionRepo, mockIntegrator)

	require.NoError(t, sessionRepo.Save(adminSession()))
	require.NotNil(t, sessions.Restore())

	service := NewService(mockIntegrator, sessions)

	_, err := service.FetchSnapshot(context.Background(), domain.Last30Days, sessions.Current(), 1)
	assert.True(t, IsUnauthorized(err))

	assert.Nil(t, sessions.Current())
	assert.Nil(t, sessions.Restore())
}

func TestService_FetchSnapshot_StaleGenerationDiscarded(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := mocks.NewMockIntegrator(ctrl)
	expectAllDatasets(mockIntegrator)

	service := NewService(mockIntegrator, &fakeRevoker{})

	// A geração 2 completa primeiro e assume o estado visível
	applied, err := service.FetchSnapshot(context.Background(), domain.Last30Days, adminSession(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, applied.Generation)

	// A geração 1 resolve depois: resultado válido, mas obsoleto
	stale, err := service.FetchSnapshot(context.Background(), domain.Last30Days, adminSession(), 1)

	assert.Nil(t, stale)
	assert.True(t, IsStaleGeneration(err))
	assert.Equal(t, 2, service.LastSnapshot().Generation)
}
