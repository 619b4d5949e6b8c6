package notifying

import (
	"sync"

	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
)

// Center guarda a fila de alertas de sistema exibida no sino do painel.
// Os alertas são criados pela fonte de eventos externa e entregues prontos
// na construção; aqui eles são apenas armazenados, listados e removidos.
// Nenhuma filtragem ou priorização por severidade acontece neste componente.
type Center struct {
	mu    sync.Mutex
	items []domain.Notification
}

// NewCenter cria a central com a lista inicial fornecida pelo chamador
func NewCenter(seed []domain.Notification) *Center {
	items := make([]domain.Notification, len(seed))
	copy(items, seed)
	return &Center{items: items}
}

// List devolve uma cópia dos alertas atuais, na ordem de chegada
func (c *Center) List() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.Notification, len(c.items))
	copy(items, c.items)
	return items
}

// Dismiss remove exatamente um alerta pelo identificador; identificador
// ausente é um no-op
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ClearAll esvazia a fila
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.items[:0]
}

// Count devolve o tamanho atual da fila, usado para o badge do sino
func (c *Center) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
