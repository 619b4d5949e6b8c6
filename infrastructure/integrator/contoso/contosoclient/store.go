package contosoclient

import (
	"context"

	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
)

// Endpoints da loja. Nenhum deles recebe recorte de datas.

// GetProducts lê o catálogo completo do GET /productos
func (c *ContosoClient) GetProducts(ctx context.Context, token string) ([]contosodomain.Producto, error) {
	body, err := c.doGet(ctx, "/productos", token, nil)
	if err != nil {
		return nil, err
	}

	var products []contosodomain.Producto
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o catálogo")
	}

	return products, nil
}

// GetFeatured lê os produtos em destaque do GET /destacados
func (c *ContosoClient) GetFeatured(ctx context.Context, token string) ([]contosodomain.Producto, error) {
	body, err := c.doGet(ctx, "/destacados", token, nil)
	if err != nil {
		return nil, err
	}

	var products []contosodomain.Producto
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os destacados")
	}

	return products, nil
}

// GetPurchases lê o histórico de compras do usuário do GET /mis-compras.
// O endpoint é exclusivo do perfil cliente.
func (c *ContosoClient) GetPurchases(ctx context.Context, token string) ([]contosodomain.Compra, error) {
	body, err := c.doGet(ctx, "/mis-compras", token, nil)
	if err != nil {
		return nil, err
	}

	var purchases []contosodomain.Compra
	if err := json.Unmarshal(body, &purchases); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o histórico de compras")
	}

	return purchases, nil
}
