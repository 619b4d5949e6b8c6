package aggregating

import (
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// BuildGeoHierarchy transforma os registros geográficos planos na hierarquia
// de dois níveis (país → região) consumida pelo treemap de drill-down.
//
// Função pura e total: não depende de sessão nem de estado de fetch, entrada
// vazia produz saída vazia em vez de erro, e a mesma entrada produz sempre a
// mesma saída. Os nós raiz saem na ordem de primeira aparição do país e as
// folhas na ordem de primeira aparição do par país/região.
func BuildGeoHierarchy(records []domain.GeoRecord) []domain.TreemapNode {
	if len(records) == 0 {
		return []domain.TreemapNode{}
	}

	countryOrder := make([]string, 0)
	countryTotal := make(map[string]float64)

	leafOrder := make([]string, 0, len(records))
	leaves := make(map[string]*domain.TreemapNode)

	for _, record := range records {
		if _, seen := countryTotal[record.Country]; !seen {
			countryOrder = append(countryOrder, record.Country)
		}
		countryTotal[record.Country] += float64(record.CustomerCount)

		// Chave composta: única por par país/região. Registros repetidos do
		// mesmo par somam na mesma folha em vez de duplicar o nó.
		leafID := record.Country + "-" + record.Region
		if leaf, seen := leaves[leafID]; seen {
			leaf.Value += float64(record.CustomerCount)
			continue
		}

		leafOrder = append(leafOrder, leafID)
		leaves[leafID] = &domain.TreemapNode{
			ID:       leafID,
			Label:    record.Region,
			ParentID: record.Country,
			Value:    float64(record.CustomerCount),
		}
	}

	nodes := make([]domain.TreemapNode, 0, len(countryOrder)+len(leafOrder))

	for _, country := range countryOrder {
		nodes = append(nodes, domain.TreemapNode{
			ID:       country,
			Label:    country,
			ParentID: "",
			Value:    countryTotal[country],
		})
	}

	for _, leafID := range leafOrder {
		nodes = append(nodes, *leaves[leafID])
	}

	return nodes
}

// Roots filtra apenas os nós raiz (países) de uma hierarquia
func Roots(nodes []domain.TreemapNode) []domain.TreemapNode {
	roots := make([]domain.TreemapNode, 0)
	for _, node := range nodes {
		if node.IsRoot() {
			roots = append(roots, node)
		}
	}
	return roots
}

// Children devolve as folhas de um nó raiz, na ordem da hierarquia
func Children(nodes []domain.TreemapNode, rootID string) []domain.TreemapNode {
	children := make([]domain.TreemapNode, 0)
	for _, node := range nodes {
		if node.ParentID == rootID {
			children = append(children, node)
		}
	}
	return children
}
