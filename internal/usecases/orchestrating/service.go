package orchestrating

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

type Service struct {
	integrator contoso.Integrator
	revoker    SessionRevoker

	mu             sync.Mutex
	inFlight       int
	highestStarted int
	last           *domain.DashboardSnapshot
}

func NewService(integrator contoso.Integrator, revoker SessionRevoker) *Service {
	return &Service{
		integrator:     integrator,
		revoker:        revoker,
		highestStarted: -1,
	}
}

// FetchSnapshot dispara as seis leituras do painel em paralelo e monta o
// snapshot da geração. Pré-condição: sessão de administrador; para qualquer
// outro perfil a chamada é um no-op sem tráfego de rede e sem mudança de
// estado.
func (s *Service) FetchSnapshot(ctx context.Context, filter domain.DateRangeFilter, session *domain.Session, generation int) (*domain.DashboardSnapshot, error) {
	if !session.IsAdministrator() {
		return nil, &OrchestrationError{Err: ErrPerfilSemAcesso, Generation: generation}
	}

	s.mu.Lock()
	s.inFlight++
	if generation > s.highestStarted {
		s.highestStarted = generation
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"filter":     filter.QueryValue(),
		"generation": generation,
	})
	logger.Debug("orquestração: iniciando geração")

	token := session.Token

	snapshot := &domain.DashboardSnapshot{
		Filter:     filter,
		Generation: generation,
	}

	var (
		wg            sync.WaitGroup
		errMu         sync.Mutex
		firstErr      error
		failedDataset string
	)

	fail := func(dataset string, err error) {
		errMu.Lock()
		defer errMu.Unlock()
		if firstErr == nil {
			firstErr = err
			failedDataset = dataset
		}
	}

	// As seis leituras são mutuamente desordenadas dentro da geração; cada
	// goroutine escreve em um campo distinto do snapshot em montagem
	wg.Add(6)

	go func() {
		defer wg.Done()
		kpis, err := s.integrator.FetchKPIs(ctx, token, filter)
		if err != nil {
			fail("/kpis", err)
			return
		}
		snapshot.KPIs = *kpis
	}()

	go func() {
		defer wg.Done()
		series, err := s.integrator.FetchFinancialSeries(ctx, token, filter)
		if err != nil {
			fail("/analisis-financiero", err)
			return
		}
		snapshot.Financial = series
	}()

	go func() {
		defer wg.Done()
		categories, err := s.integrator.FetchCategoryProfitability(ctx, token, filter)
		if err != nil {
			fail("/admin/rentabilidad-categoria", err)
			return
		}
		snapshot.CategoryProfits = categories
	}()

	go func() {
		defer wg.Done()
		customers, err := s.integrator.FetchTopCustomers(ctx, token, filter)
		if err != nil {
			fail("/top-clientes", err)
			return
		}
		snapshot.TopCustomers = customers
	}()

	go func() {
		defer wg.Done()
		records, err := s.integrator.FetchGeoCustomers(ctx, token, filter)
		if err != nil {
			fail("/admin/geo-clientes", err)
			return
		}
		snapshot.GeoCustomers = records
	}()

	go func() {
		defer wg.Done()
		orders, err := s.integrator.FetchRecentOrders(ctx, token, filter)
		if err != nil {
			fail("/ultimas-ordenes", err)
			return
		}
		snapshot.RecentOrders = orders
	}()

	wg.Wait()

	if firstErr != nil {
		// Tudo ou nada: nenhuma parte do snapshot é publicada
		if IsUnauthorized(firstErr) {
			logger.Warn("orquestração: autorização expirada, derrubando a sessão")
			s.revoker.Logout()
		} else {
			logger.WithError(firstErr).WithField("endpoint", failedDataset).Error("orquestração: geração falhou")
		}
		return nil, &OrchestrationError{Err: firstErr, Dataset: failedDataset, Generation: generation}
	}

	snapshot.FetchedAt = time.Now()

	// Borda de aplicação: só a geração mais alta iniciada pode atualizar o
	// estado visível. Um resultado que resolve depois de uma geração mais
	// nova ter começado é descartado aqui, não por cancelamento da chamada.
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation < s.highestStarted {
		logger.WithField("generation", generation).Info("orquestração: geração obsoleta descartada")
		return nil, &OrchestrationError{Err: ErrGeracaoDescartada, Generation: generation}
	}

	s.last = snapshot

	logger.Info("orquestração: snapshot aplicado")

	return snapshot, nil
}

// LastSnapshot devolve o último snapshot aplicado (a geração mais alta que
// completou), ou nil antes da primeira geração bem-sucedida
func (s *Service) LastSnapshot() *domain.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Busy indica se alguma geração está em andamento
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}
