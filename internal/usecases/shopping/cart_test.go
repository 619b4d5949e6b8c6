package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
)

func TestCart_AddItem(t *testing.T) {
	log.SetupTestLogger()

	cart := NewCart()
	bike := domain.Product{ProductKey: 1, Name: "Mountain Bike", UnitPrice: 10.0}

	first := cart.AddItem(bike)
	second := cart.AddItem(bike)

	assert.Equal(t, 2, cart.Count())
	assert.NotEmpty(t, first.LineID)
	assert.NotEqual(t, first.LineID, second.LineID, "o mesmo produto gera linhas distintas")

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "Mountain Bike", lines[0].Product.Name)
}

func TestCart_Total(t *testing.T) {
	log.SetupTestLogger()

	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total())

	cart.AddItem(domain.Product{ProductKey: 1, Name: "Capacete", UnitPrice: 10.0})
	cart.AddItem(domain.Product{ProductKey: 2, Name: "Luvas", UnitPrice: 15.5})

	assert.Equal(t, 25.5, cart.Total())

	// Total sempre recalculado a partir das linhas correntes
	cart.AddItem(domain.Product{ProductKey: 3, Name: "Garrafa", UnitPrice: 4.5})
	assert.Equal(t, 30.0, cart.Total())
}

func TestCart_Checkout(t *testing.T) {
	log.SetupTestLogger()

	cart := NewCart()
	cart.AddItem(domain.Product{ProductKey: 1, UnitPrice: 10.0})
	cart.AddItem(domain.Product{ProductKey: 2, UnitPrice: 15.5})

	result := cart.Checkout()

	assert.Equal(t, 2, result.ItemCount)
	assert.Equal(t, 25.5, result.Total)
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, 0.0, cart.Total())

	// Checkout de carrinho vazio é válido e devolve resumo zerado
	empty := cart.Checkout()
	assert.Equal(t, 0, empty.ItemCount)
	assert.Equal(t, 0.0, empty.Total)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	log.SetupTestLogger()

	cart := NewCart()
	cart.AddItem(domain.Product{ProductKey: 1, Name: "Capacete", UnitPrice: 10.0})

	lines := cart.Lines()
	lines[0].Product.Name = "alterado"

	assert.Equal(t, "Capacete", cart.Lines()[0].Product.Name)
}
