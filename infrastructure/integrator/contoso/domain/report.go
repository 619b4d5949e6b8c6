package domain

// Formas brutas dos datasets do painel, com os nomes de campos exportados
// pela API. A conversão para os tipos internos acontece na fachada do
// integrador; nada acima dela enxerga estas estruturas.

// ResumenKPIs é a resposta do GET /kpis
type ResumenKPIs struct {
	TotalVentas    float64 `json:"TotalVentas"`
	TotalPedidos   int     `json:"TotalPedidos"`
	TicketPromedio float64 `json:"TicketPromedio"`
}

// PeriodoFinanciero é uma linha do GET /analisis-financiero
type PeriodoFinanciero struct {
	Mes      string  `json:"Mes"`
	Ventas   float64 `json:"Ventas"`
	Costos   float64 `json:"Costos"`
	Ganancia float64 `json:"Ganancia"`
}

// RentabilidadCategoria é uma linha do GET /admin/rentabilidad-categoria
type RentabilidadCategoria struct {
	Categoria    string  `json:"Categoria"`
	GananciaNeta float64 `json:"GananciaNeta"`
}

// TopCliente é uma linha do GET /top-clientes
type TopCliente struct {
	Cliente       string  `json:"Cliente"`
	TotalComprado float64 `json:"TotalComprado"`
}

// GeoCliente é uma linha do GET /admin/geo-clientes
type GeoCliente struct {
	Pais          string `json:"Pais"`
	Estado        string `json:"Estado"`
	TotalClientes int    `json:"TotalClientes"`
}

// UltimaOrden é uma linha do GET /ultimas-ordenes
type UltimaOrden struct {
	OrderKey int64   `json:"OrderKey"`
	Fecha    string  `json:"Fecha"`
	Cliente  string  `json:"Cliente"`
	Total    float64 `json:"Total"`
}

// TopProducto é uma linha do GET /top-productos
type TopProducto struct {
	Producto string  `json:"Producto"`
	Ventas   float64 `json:"Ventas"`
}

// VentaGlobal é uma linha do GET /admin/ventas-globales
type VentaGlobal struct {
	Pais   string  `json:"Pais"`
	Ventas float64 `json:"Ventas"`
}
