package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetTopCustomers lê as empresas compradoras do GET /top-clientes
func (c *ContosoClient) GetTopCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.TopCliente, error) {
	body, err := c.doGet(ctx, "/top-clientes", token, &filter)
	if err != nil {
		return nil, err
	}

	var customers []contosodomain.TopCliente
	if err := json.Unmarshal(body, &customers); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os top clientes")
	}

	return customers, nil
}
