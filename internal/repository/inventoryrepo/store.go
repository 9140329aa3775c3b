// Package inventoryrepo contém o Store em memória: o cadastro de itens e os dois
// históricos de consumo (fila cronológica e pilha de atividade recente).
//
// O Store é a fonte autoritativa dos dados e não é seguro para uso concorrente;
// quem precisar de vários atores deve serializar o acesso (por exemplo, com um mutex
// em volta do Store).
package inventoryrepo

import (
	"fmt"
	"time"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
)

// Store guarda itens (id → item, em ordem de criação) e o histórico de consumo.
type Store struct {
	items  map[int]*domain.Item
	order  []int
	nextID int

	queue eventQueue // FIFO (cronológico)
	stack eventStack // LIFO (recentes)

	now func() time.Time
}

// Option configura um Store.
type Option func(*Store)

// WithClock substitui o relógio usado quando o consumo é registrado sem horário.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore cria e retorna um Store vazio.
func NewStore(opts ...Option) *Store {
	s := &Store{
		items:  make(map[int]*domain.Item),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateItem cadastra um item com o próximo identificador sequencial.
// Nenhum campo é validado: estoque mínimo ou atual negativos são aceitos.
func (s *Store) CreateItem(req domain.NewItem) domain.Item {
	item := &domain.Item{
		ID:           s.nextID,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		Lot:          req.Lot,
		Expiry:       domain.Date(req.Expiry),
		MinStock:     req.MinStock,
		CurrentStock: req.CurrentStock,
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	s.nextID++
	return *item
}

// GetItem busca um item pelo identificador. O(1).
func (s *Store) GetItem(id int) (domain.Item, bool) {
	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, false
	}
	return *item, true
}

// Items devolve cópias de todos os itens em ordem de criação.
func (s *Store) Items() []domain.Item {
	out := make([]domain.Item, len(s.order))
	for i, id := range s.order {
		out[i] = *s.items[id]
	}
	return out
}

// Len devolve a quantidade de itens cadastrados.
func (s *Store) Len() int { return len(s.order) }

// RecordConsumption registra um consumo com o horário atual do relógio do Store.
func (s *Store) RecordConsumption(itemID, quantity int) error {
	return s.RecordConsumptionAt(itemID, quantity, s.now())
}

// RecordConsumptionAt registra um evento na fila e na pilha e debita do estoque.
// O estoque pode ficar negativo. Em caso de erro o Store não é alterado.
func (s *Store) RecordConsumptionAt(itemID, quantity int, at time.Time) error {
	item, ok := s.items[itemID]
	if !ok {
		return apperror.NewReferenceError(fmt.Sprintf("Item %d inexistente.", itemID))
	}
	if quantity <= 0 {
		return apperror.NewValidationError(fmt.Sprintf("Quantidade deve ser > 0 (recebido %d).", quantity))
	}

	evt := domain.NewConsumptionEvent(s.queue.len()+1, itemID, quantity, at)
	s.queue.enqueue(&evt)
	s.stack.push(&evt)
	item.CurrentStock -= quantity
	return nil
}

// ChronologicalLog devolve o histórico em ordem cronológica de registro (mais antigo primeiro).
func (s *Store) ChronologicalLog() []domain.ConsumptionEvent { return s.queue.snapshot() }

// RecentLog devolve o histórico a partir do evento mais recente.
func (s *Store) RecentLog() []domain.ConsumptionEvent { return s.stack.snapshot() }

// EventCount devolve o número de eventos registrados.
func (s *Store) EventCount() int { return s.queue.len() }

// OldestEvent devolve o primeiro evento da fila.
func (s *Store) OldestEvent() (domain.ConsumptionEvent, bool) {
	e, ok := s.queue.front()
	if !ok {
		return domain.ConsumptionEvent{}, false
	}
	return *e, true
}

// LatestEvent devolve o topo da pilha.
func (s *Store) LatestEvent() (domain.ConsumptionEvent, bool) {
	e, ok := s.stack.top()
	if !ok {
		return domain.ConsumptionEvent{}, false
	}
	return *e, true
}
