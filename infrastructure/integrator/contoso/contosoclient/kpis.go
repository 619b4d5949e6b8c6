package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetKPIs lê os indicadores consolidados do GET /kpis
func (c *ContosoClient) GetKPIs(ctx context.Context, token string, filter domain.DateRangeFilter) (*contosodomain.ResumenKPIs, error) {
	body, err := c.doGet(ctx, "/kpis", token, &filter)
	if err != nil {
		return nil, err
	}

	var kpis contosodomain.ResumenKPIs
	if err := json.Unmarshal(body, &kpis); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os KPIs")
	}

	return &kpis, nil
}
