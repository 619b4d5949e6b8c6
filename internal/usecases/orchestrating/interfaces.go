package orchestrating

import (
	"context"

	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// Orchestrator busca os seis datasets do painel em uma única geração
// atômica: ou o snapshot sai completo, ou a operação inteira falha.
//
// Obrigação do chamador: o contador de geração é fornecido por quem chama e
// deve ser monotonicamente crescente: troca de recorte de datas e refresh
// manual produzem nova geração. O orquestrador descarta resultados de
// gerações obsoletas, mas não serializa gerações concorrentes nem deduplica
// chamadas para a mesma geração.
type Orchestrator interface {
	FetchSnapshot(ctx context.Context, filter domain.DateRangeFilter, session *domain.Session, generation int) (*domain.DashboardSnapshot, error)
	LastSnapshot() *domain.DashboardSnapshot
	Busy() bool
}

// SessionRevoker derruba a sessão quando qualquer leitura autenticada recebe
// um sinal de autorização expirada. Implementado pelo SessionManager.
type SessionRevoker interface {
	Logout()
}
