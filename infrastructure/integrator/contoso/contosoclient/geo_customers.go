package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetGeoCustomers lê a base instalada por país e região do
// GET /admin/geo-clientes. Este dataset alimenta a hierarquia do treemap.
func (c *ContosoClient) GetGeoCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.GeoCliente, error) {
	body, err := c.doGet(ctx, "/admin/geo-clientes", token, &filter)
	if err != nil {
		return nil, err
	}

	var records []contosodomain.GeoCliente
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os geo clientes")
	}

	return records, nil
}
