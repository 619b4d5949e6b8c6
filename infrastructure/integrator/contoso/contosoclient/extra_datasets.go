package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// Datasets sob demanda do painel administrativo. Não participam do snapshot
// atômico: são consultados individualmente quando o usuário pede.

// GetTopProducts lê os produtos com maior receita do GET /top-productos
func (c *ContosoClient) GetTopProducts(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.TopProducto, error) {
	body, err := c.doGet(ctx, "/top-productos", token, &filter)
	if err != nil {
		return nil, err
	}

	var products []contosodomain.TopProducto
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os top produtos")
	}

	return products, nil
}

// GetGlobalSales lê a receita por país do GET /admin/ventas-globales
func (c *ContosoClient) GetGlobalSales(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.VentaGlobal, error) {
	body, err := c.doGet(ctx, "/admin/ventas-globales", token, &filter)
	if err != nil {
		return nil, err
	}

	var sales []contosodomain.VentaGlobal
	if err := json.Unmarshal(body, &sales); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar as vendas globais")
	}

	return sales, nil
}
