package shopping

import (
	"sync"

	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
	"github.com/vfg2006/contoso-dashboard-client/pkg/utils"
)

// Cart acumula os produtos selecionados em um pedido em andamento.
// Cada adição cria uma linha nova de quantidade implícita 1: não há
// deduplicação nem campo de quantidade. Também não há remoção de linha
// individual: apenas adição e limpeza total no checkout.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

// CheckoutResult é o resultado explícito do fechamento do carrinho.
// A camada de apresentação decide como exibi-lo; o pagamento em si é um
// efeito externo disparado separadamente pelo chamador.
type CheckoutResult struct {
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

func NewCart() *Cart {
	return &Cart{lines: make([]domain.CartLine, 0)}
}

// AddItem anexa uma linha ao carrinho e a devolve. Chamadas repetidas com o
// mesmo produto criam linhas distintas.
func (c *Cart) AddItem(product domain.Product) domain.CartLine {
	id, err := utils.GenerateID()
	if err != nil {
		// Sem identificador a linha ainda é válida; o ID só serve à exibição
		log.L.WithError(err).Warn("carrinho: falha ao gerar identificador de linha")
	}

	line := domain.CartLine{
		LineID:  id,
		Product: product,
	}

	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()

	return line
}

// Lines devolve uma cópia das linhas atuais
func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Count devolve o número de linhas do carrinho
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total soma os preços unitários de todas as linhas. Sempre recalculado sob
// demanda; nunca há total em cache desatualizado.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Product.UnitPrice
	}

	return utils.RoundWithTwoDecimalPlace(total)
}

// Checkout limpa o carrinho incondicionalmente e devolve o resumo do pedido
// fechado
func (c *Cart) Checkout() CheckoutResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Product.UnitPrice
	}

	result := CheckoutResult{
		ItemCount: len(c.lines),
		Total:     utils.RoundWithTwoDecimalPlace(total),
	}

	c.lines = c.lines[:0]

	return result
}
