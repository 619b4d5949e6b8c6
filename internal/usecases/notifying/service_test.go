package notifying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

func seed() []domain.Notification {
	return []domain.Notification{
		{ID: "n1", Title: "Novo pedido", Severity: domain.SeverityInfo},
		{ID: "n2", Title: "Meta atingida", Severity: domain.SeveritySuccess},
		{ID: "n3", Title: "Estoque baixo", Severity: domain.SeverityWarning},
	}
}

func TestCenter_List(t *testing.T) {
	center := NewCenter(seed())

	items := center.List()
	assert.Len(t, items, 3)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, "n3", items[2].ID)

	// A lista devolvida é uma cópia
	items[0].ID = "alterado"
	assert.Equal(t, "n1", center.List()[0].ID)
}

func TestCenter_Dismiss(t *testing.T) {
	center := NewCenter(seed())

	center.Dismiss("n2")

	items := center.List()
	assert.Len(t, items, 2)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, "n3", items[1].ID)

	// Identificador inexistente é um no-op
	center.Dismiss("nao-existe")
	assert.Equal(t, 2, center.Count())

	// Dispensar duas vezes o mesmo também
	center.Dismiss("n2")
	assert.Equal(t, 2, center.Count())
}

func TestCenter_ClearAll(t *testing.T) {
	center := NewCenter(seed())

	center.ClearAll()
	assert.Equal(t, 0, center.Count())
	assert.Empty(t, center.List())

	// Limpar fila vazia é válido
	center.ClearAll()
	assert.Equal(t, 0, center.Count())
}

func TestCenter_EmptySeed(t *testing.T) {
	center := NewCenter(nil)
	assert.Equal(t, 0, center.Count())
	assert.NotNil(t, center.List())
}
