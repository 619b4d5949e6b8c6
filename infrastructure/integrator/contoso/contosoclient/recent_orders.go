package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetRecentOrders lê os pedidos mais recentes do GET /ultimas-ordenes
func (c *ContosoClient) GetRecentOrders(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.UltimaOrden, error) {
	body, err := c.doGet(ctx, "/ultimas-ordenes", token, &filter)
	if err != nil {
		return nil, err
	}

	var orders []contosodomain.UltimaOrden
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar as últimas ordens")
	}

	return orders, nil
}
