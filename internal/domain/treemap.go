package domain

// TreemapNode é uma entrada da hierarquia país → região usada na
// visualização de drill-down. ParentID vazio identifica um nó raiz.
// Os nós nunca são mutados depois de construídos; uma nova entrada de
// dados gera a hierarquia inteira novamente.
type TreemapNode struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	ParentID string  `json:"parent_id"`
	Value    float64 `json:"value"`
}

// IsRoot indica se o nó representa um país (nível raiz)
func (n TreemapNode) IsRoot() bool {
	return n.ParentID == ""
}
