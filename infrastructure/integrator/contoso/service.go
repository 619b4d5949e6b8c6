package contoso

import (
	"context"

	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/contosoclient"
	contosodomain "github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

// Integrator é a fachada tipada sobre a API Contoso. Converte as formas
// brutas do colaborador remoto nos tipos internos do cliente; nenhuma camada
// acima dela enxerga os nomes de campos do servidor.
type Integrator interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Register(ctx context.Context, profile domain.RegisterProfile) error

	FetchKPIs(ctx context.Context, token string, filter domain.DateRangeFilter) (*domain.KPISummary, error)
	FetchFinancialSeries(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.FinancialPeriod, error)
	FetchCategoryProfitability(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.CategoryProfit, error)
	FetchTopCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.TopCustomer, error)
	FetchGeoCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.GeoRecord, error)
	FetchRecentOrders(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.Order, error)
	FetchTopProducts(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.ProductSales, error)
	FetchGlobalSales(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.CountrySales, error)

	FetchCatalog(ctx context.Context, token string) ([]domain.Product, error)
	FetchFeatured(ctx context.Context, token string) ([]domain.Product, error)
	FetchPurchases(ctx context.Context, token string) ([]domain.Order, error)
}

type ContosoIntegrator struct {
	cfg    *config.Config
	Client contosoclient.Client
}

func New(cfg *config.Config, client contosoclient.Client) Integrator {
	return &ContosoIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Login autentica o usuário e devolve a sessão resultante
func (s *ContosoIntegrator) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	resp, err := s.Client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session, err := FactorySession(resp)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("contoso: resposta de login fora do contrato")
		return nil, err
	}

	return session, nil
}

// Register cadastra um novo cliente
func (s *ContosoIntegrator) Register(ctx context.Context, profile domain.RegisterProfile) error {
	return s.Client.Register(ctx, contosodomain.RegisterRequest{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Password:  profile.Password,
	})
}

func (s *ContosoIntegrator) FetchKPIs(ctx context.Context, token string, filter domain.DateRangeFilter) (*domain.KPISummary, error) {
	resp, err := s.Client.GetKPIs(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	return &domain.KPISummary{
		TotalSales:    resp.TotalVentas,
		TotalOrders:   resp.TotalPedidos,
		AverageTicket: resp.TicketPromedio,
	}, nil
}

func (s *ContosoIntegrator) FetchFinancialSeries(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.FinancialPeriod, error) {
	resp, err := s.Client.GetFinancialAnalysis(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	series := make([]domain.FinancialPeriod, 0, len(resp))
	for _, row := range resp {
		series = append(series, domain.FinancialPeriod{
			Month:  row.Mes,
			Sales:  row.Ventas,
			Costs:  row.Costos,
			Profit: row.Ganancia,
		})
	}

	return series, nil
}

func (s *ContosoIntegrator) FetchCategoryProfitability(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.CategoryProfit, error) {
	resp, err := s.Client.GetCategoryProfitability(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.CategoryProfit, 0, len(resp))
	for _, row := range resp {
		categories = append(categories, domain.CategoryProfit{
			Category:  row.Categoria,
			NetProfit: row.GananciaNeta,
		})
	}

	return categories, nil
}

func (s *ContosoIntegrator) FetchTopCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.TopCustomer, error) {
	resp, err := s.Client.GetTopCustomers(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.TopCustomer, 0, len(resp))
	for _, row := range resp {
		customers = append(customers, domain.TopCustomer{
			Customer:       row.Cliente,
			TotalPurchased: row.TotalComprado,
		})
	}

	return customers, nil
}

func (s *ContosoIntegrator) FetchGeoCustomers(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.GeoRecord, error) {
	resp, err := s.Client.GetGeoCustomers(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	records := make([]domain.GeoRecord, 0, len(resp))
	for _, row := range resp {
		records = append(records, domain.GeoRecord{
			Country:       row.Pais,
			Region:        row.Estado,
			CustomerCount: row.TotalClientes,
		})
	}

	return records, nil
}

func (s *ContosoIntegrator) FetchRecentOrders(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.Order, error) {
	resp, err := s.Client.GetRecentOrders(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, row := range resp {
		orders = append(orders, domain.Order{
			OrderKey: row.OrderKey,
			Date:     row.Fecha,
			Customer: row.Cliente,
			Total:    row.Total,
		})
	}

	return orders, nil
}

func (s *ContosoIntegrator) FetchTopProducts(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.ProductSales, error) {
	resp, err := s.Client.GetTopProducts(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductSales, 0, len(resp))
	for _, row := range resp {
		products = append(products, domain.ProductSales{
			Product: row.Producto,
			Sales:   row.Ventas,
		})
	}

	return products, nil
}

func (s *ContosoIntegrator) FetchGlobalSales(ctx context.Context, token string, filter domain.DateRangeFilter) ([]domain.CountrySales, error) {
	resp, err := s.Client.GetGlobalSales(ctx, token, filter)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.CountrySales, 0, len(resp))
	for _, row := range resp {
		sales = append(sales, domain.CountrySales{
			Country: row.Pais,
			Sales:   row.Ventas,
		})
	}

	return sales, nil
}

func (s *ContosoIntegrator) FetchCatalog(ctx context.Context, token string) ([]domain.Product, error) {
	resp, err := s.Client.GetProducts(ctx, token)
	if err != nil {
		return nil, err
	}

	return FactoryProducts(resp), nil
}

func (s *ContosoIntegrator) FetchFeatured(ctx context.Context, token string) ([]domain.Product, error) {
	resp, err := s.Client.GetFeatured(ctx, token)
	if err != nil {
		return nil, err
	}

	return FactoryProducts(resp), nil
}

func (s *ContosoIntegrator) FetchPurchases(ctx context.Context, token string) ([]domain.Order, error) {
	resp, err := s.Client.GetPurchases(ctx, token)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, row := range resp {
		orders = append(orders, domain.Order{
			OrderKey:  row.OrderKey,
			Date:      row.Fecha,
			ItemCount: row.CantidadItems,
			Total:     row.Total,
		})
	}

	return orders, nil
}
