package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// GetCategoryProfitability lê o GET /admin/rentabilidad-categoria.
// O endpoint é exclusivo de administradores; a autorização efetiva é do
// servidor.
func (c *ContosoClient) GetCategoryProfitability(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.RentabilidadCategoria, error) {
	body, err := c.doGet(ctx, "/admin/rentabilidad-categoria", token, &filter)
	if err != nil {
		return nil, err
	}

	var categories []contosodomain.RentabilidadCategoria
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a rentabilidade por categoria")
	}

	return categories, nil
}
