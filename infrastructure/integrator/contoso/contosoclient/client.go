package contosoclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/apierrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Login(ctx context.Context, username, password string) (*contosodomain.TokenResponse, error)
	Register(ctx context.Context, req contosodomain.RegisterRequest) error

	GetKPIs(ctx context.Context, token string, filter domain.DateRangeFilter) (*contosodomain.ResumenKPIs, error)
	GetFinancialAnalysis(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.PeriodoFinanciero, error)
	GetCategoryProfitability(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.RentabilidadCategoria, error)
	GetTopCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.TopCliente, error)
	GetGeoCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.GeoCliente, error)
	GetRecentOrders(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.UltimaOrden, error)
	GetTopProducts(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.TopProducto, error)
	GetGlobalSales(ctx context.Context, token string, filter domain.DateRangeFilter) ([]contosodomain.VentaGlobal, error)

	GetProducts(ctx context.Context, token string) ([]contosodomain.Producto, error)
	GetFeatured(ctx context.Context, token string) ([]contosodomain.Producto, error)
	GetPurchases(ctx context.Context, token string) ([]contosodomain.Compra, error)
}

type ContosoClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ContosoClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		cfg: cfg,
	}
}

// buildURL monta a URL de um endpoint relativo à base configurada, com o
// parâmetro `dias` quando um recorte de datas é informado
func (c *ContosoClient) buildURL(endpointPath string, filter *domain.DateRangeFilter) (string, error) {
	endpoint, err := url.Parse(c.cfg.Contoso.BaseURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	if filter != nil {
		query := endpoint.Query()
		query.Set("dias", filter.QueryValue())
		endpoint.RawQuery = query.Encode()
	}

	return endpoint.String(), nil
}

// doGet executa uma leitura autenticada e devolve o corpo da resposta.
// Falhas de transporte (incluindo timeout) são classificadas como servidor
// indisponível; respostas da classe 401 como sessão expirada.
func (c *ContosoClient) doGet(ctx context.Context, endpointPath, token string, filter *domain.DateRangeFilter) ([]byte, error) {
	started := time.Now()

	reqURL, err := c.buildURL(endpointPath, filter)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, err.Error())
	}
	defer resp.Body.Close()

	body, err := handleResponse(resp)

	logDatasetRead(ctx, endpointPath, resp.StatusCode, time.Since(started), err)

	return body, err
}

// handleResponse lê o corpo e converte respostas não bem-sucedidas na
// taxonomia de erros do cliente
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.New(apierrors.ErrServidorIndisponivel, apierrors.CodeUnreachable, err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apierrors.FromStatusCode(resp.StatusCode, extractDetail(body))
	}

	return body, nil
}

// extractDetail recupera o campo `detail` de um corpo de erro, quando existe
func extractDetail(body []byte) string {
	var detail contosodomain.ErrorDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return ""
	}
	return detail.Detail
}
