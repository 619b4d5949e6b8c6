package shopping

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

const (
	catalogCacheKey  = "productos"
	featuredCacheKey = "destacados"
)

// Storefront expõe as leituras da loja para o perfil cliente: catálogo,
// destaques e histórico de compras
type Storefront interface {
	Catalog(ctx context.Context, session *domain.Session) ([]domain.Product, error)
	Featured(ctx context.Context, session *domain.Session) ([]domain.Product, error)
	Purchases(ctx context.Context, session *domain.Session) ([]domain.Order, error)
	InvalidateCache()
}

// SessionRevoker derruba a sessão quando uma leitura da loja recebe um
// sinal de autorização expirada. Implementado pelo SessionManager.
type SessionRevoker interface {
	Logout()
}

type Service struct {
	integrator contoso.Integrator
	revoker    SessionRevoker
	cache      *gocache.Cache
}

func NewService(cfg *config.Config, integrator contoso.Integrator, revoker SessionRevoker) *Service {
	// O catálogo muda raramente; um cache TTL curto evita repetir as
	// leituras a cada navegação entre abas da loja
	ttl := cfg.CatalogTTL()
	return &Service{
		integrator: integrator,
		revoker:    revoker,
		cache:      gocache.New(ttl, 2*ttl),
	}
}

// readFailed derruba a sessão quando o servidor rejeitou o token. A queda é
// uniforme: qualquer leitura autenticada com 401 limpa memória e credenciais
// persistidas, igual ao painel.
func (s *Service) readFailed(ctx context.Context, err error) error {
	if apierrors.IsSessionExpired(err) {
		log.ForContext(ctx).Warn("loja: autorização expirada, derrubando a sessão")
		s.revoker.Logout()
		s.InvalidateCache()
	}
	return err
}

// Catalog devolve o catálogo completo, memoizado por TTL
func (s *Service) Catalog(ctx context.Context, session *domain.Session) ([]domain.Product, error) {
	if !session.LoggedIn() {
		return nil, apierrors.New(apierrors.ErrSessaoExpirada, apierrors.CodeSessionExpired, "")
	}

	// Chave por token: o cache de uma sessão nunca serve outra
	key := catalogCacheKey + ":" + session.Token
	if cached, found := s.cache.Get(key); found {
		return cached.([]domain.Product), nil
	}

	products, err := s.integrator.FetchCatalog(ctx, session.Token)
	if err != nil {
		return nil, s.readFailed(ctx, err)
	}

	s.cache.Set(key, products, gocache.DefaultExpiration)

	log.ForContext(ctx).WithField("endpoint", "/productos").Debugf("loja: catálogo com %d produtos", len(products))

	return products, nil
}

// Featured devolve os produtos em destaque, memoizados por TTL
func (s *Service) Featured(ctx context.Context, session *domain.Session) ([]domain.Product, error) {
	if !session.LoggedIn() {
		return nil, apierrors.New(apierrors.ErrSessaoExpirada, apierrors.CodeSessionExpired, "")
	}

	key := featuredCacheKey + ":" + session.Token
	if cached, found := s.cache.Get(key); found {
		return cached.([]domain.Product), nil
	}

	products, err := s.integrator.FetchFeatured(ctx, session.Token)
	if err != nil {
		return nil, s.readFailed(ctx, err)
	}

	s.cache.Set(key, products, gocache.DefaultExpiration)

	return products, nil
}

// Purchases devolve o histórico de compras do usuário. Exclusivo do perfil
// cliente: para qualquer outro perfil a chamada é um no-op sem tráfego de
// rede. Histórico nunca entra em cache: precisa refletir compras recentes.
func (s *Service) Purchases(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	if !session.IsCustomer() {
		return nil, apierrors.New(apierrors.ErrPerfilSemAcesso, apierrors.CodeForbidden, "histórico de compras é exclusivo do perfil cliente")
	}

	orders, err := s.integrator.FetchPurchases(ctx, session.Token)
	if err != nil {
		return nil, s.readFailed(ctx, err)
	}

	return orders, nil
}

// InvalidateCache descarta o catálogo memoizado; usado no logout para não
// vazar dados entre sessões
func (s *Service) InvalidateCache() {
	s.cache.Flush()
}

// Categories extrai as categorias distintas do catálogo, na ordem de
// primeira aparição, para os filtros da loja
func Categories(products []domain.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, product := range products {
		if product.Category == "" || seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}

	return categories
}

// FilterByCategory devolve apenas os produtos da categoria informada;
// categoria vazia devolve o catálogo inteiro
func FilterByCategory(products []domain.Product, category string) []domain.Product {
	if category == "" {
		return products
	}

	filtered := make([]domain.Product, 0)
	for _, product := range products {
		if product.Category == category {
			filtered = append(filtered, product)
		}
	}

	return filtered
}
