package contoso

import (
	"fmt"

	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// FactorySession valida a resposta de login e constrói a sessão interna.
// Perfis fora do conjunto conhecido são rejeitados na fronteira em vez de
// propagados sem tipo para dentro do cliente.
func FactorySession(resp *contosodomain.TokenResponse) (*domain.Session, error) {
	if resp == nil || resp.AccessToken == "" {
		return nil, fmt.Errorf("resposta de login sem token de acesso")
	}

	role := domain.Role(resp.Role)
	switch role {
	case domain.RoleAdministrator, domain.RoleCustomer:
	default:
		return nil, fmt.Errorf("perfil desconhecido na resposta de login: %q", resp.Role)
	}

	return &domain.Session{
		Token:       resp.AccessToken,
		Role:        role,
		DisplayName: resp.Name,
	}, nil
}

// FactoryProducts converte as linhas de produto da API para o catálogo interno
func FactoryProducts(rows []contosodomain.Producto) []domain.Product {
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			ProductKey:  row.ProductKey,
			Name:        row.ProductName,
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Brand:       row.Brand,
			UnitPrice:   row.UnitPrice,
		})
	}
	return products
}
