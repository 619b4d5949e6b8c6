package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetFinancialAnalysis lê a série mensal do GET /analisis-financiero
func (c *ContosoClient) GetFinancialAnalysis(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.PeriodoFinanciero, error) {
	body, err := c.doGet(ctx, "/analisis-financiero", token, &filter)
	if err != nil {
		return nil, err
	}

	var series []contosodomain.PeriodoFinanciero
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a série financeira")
	}

	return series, nil
}
