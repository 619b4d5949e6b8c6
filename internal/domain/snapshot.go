package domain

import "time"

// KPISummary são os indicadores consolidados do topo do painel
type KPISummary struct {
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	AverageTicket float64 `json:"average_ticket"`
}

// FinancialPeriod é um mês da série financeira (vendas, custos e ganho)
type FinancialPeriod struct {
	Month  string  `json:"month"` // formato yyyy-MM
	Sales  float64 `json:"sales"`
	Costs  float64 `json:"costs"`
	Profit float64 `json:"profit"`
}

// CategoryProfit é o ganho líquido consolidado de uma categoria de produto
type CategoryProfit struct {
	Category  string  `json:"category"`
	NetProfit float64 `json:"net_profit"`
}

// TopCustomer é uma empresa compradora ordenada por total comprado
type TopCustomer struct {
	Customer       string  `json:"customer"`
	TotalPurchased float64 `json:"total_purchased"`
}

// GeoRecord é a base instalada de clientes em uma região de um país.
// Vários registros podem compartilhar o mesmo país.
type GeoRecord struct {
	Country       string `json:"country"`
	Region        string `json:"region"`
	CustomerCount int    `json:"customer_count"`
}

// Order é um pedido já registrado no servidor, somente leitura no cliente.
// Customer é preenchido nas últimas ordens do painel; ItemCount no histórico
// de compras do cliente.
type Order struct {
	OrderKey  int64   `json:"order_key"`
	Date      string  `json:"date"` // formato yyyy-MM-dd
	Customer  string  `json:"customer,omitempty"`
	ItemCount int     `json:"item_count,omitempty"`
	Total     float64 `json:"total"`
}

// ProductSales é a receita consolidada de um produto (dataset sob demanda)
type ProductSales struct {
	Product string  `json:"product"`
	Sales   float64 `json:"sales"`
}

// CountrySales é a receita consolidada de um país (dataset sob demanda)
type CountrySales struct {
	Country string  `json:"country"`
	Sales   float64 `json:"sales"`
}

// DashboardSnapshot é o resultado atômico de uma geração de busca do painel.
// Ou os seis datasets estão presentes, ou a orquestração falhou por inteiro;
// nunca existe snapshot parcial.
type DashboardSnapshot struct {
	Filter          DateRangeFilter   `json:"filter"`
	Generation      int               `json:"generation"`
	KPIs            KPISummary        `json:"kpis"`
	Financial       []FinancialPeriod `json:"financial"`
	CategoryProfits []CategoryProfit  `json:"category_profits"`
	TopCustomers    []TopCustomer     `json:"top_customers"`
	GeoCustomers    []GeoRecord       `json:"geo_customers"`
	RecentOrders    []Order           `json:"recent_orders"`
	FetchedAt       time.Time         `json:"fetched_at"`
}
