package domain

// Product é um item do catálogo da loja
type Product struct {
	ProductKey  int64   `json:"product_key"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Brand       string  `json:"brand"`
	UnitPrice   float64 `json:"unit_price"`
}

// CartLine é um produto adicionado ao carrinho. A quantidade é sempre 1:
// adições repetidas do mesmo produto criam linhas repetidas.
type CartLine struct {
	LineID  string  `json:"line_id"`
	Product Product `json:"product"`
}
