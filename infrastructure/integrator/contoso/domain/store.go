package domain

// Producto é uma linha do GET /productos e do GET /destacados
type Producto struct {
	ProductKey  int64   `json:"ProductKey"`
	ProductName string  `json:"ProductName"`
	Category    string  `json:"Category"`
	Subcategory string  `json:"Subcategory"`
	Brand       string  `json:"Brand"`
	UnitPrice   float64 `json:"UnitPrice"`
}

// Compra é uma linha do GET /mis-compras
type Compra struct {
	OrderKey      int64   `json:"OrderKey"`
	Fecha         string  `json:"Fecha"`
	CantidadItems int     `json:"CantidadItems"`
	Total         float64 `json:"Total"`
}
