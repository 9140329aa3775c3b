package inventoryrepo

import "labstock/internal/domain"

// eventQueue é o histórico cronológico (FIFO): o evento mais antigo fica na frente.
type eventQueue struct {
	events []*domain.ConsumptionEvent
}

func (q *eventQueue) enqueue(e *domain.ConsumptionEvent) { q.events = append(q.events, e) }

func (q *eventQueue) len() int { return len(q.events) }

// front devolve o evento mais antigo.
func (q *eventQueue) front() (*domain.ConsumptionEvent, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	return q.events[0], true
}

// snapshot devolve cópias em ordem de chegada (mais antigo primeiro).
func (q *eventQueue) snapshot() []domain.ConsumptionEvent {
	out := make([]domain.ConsumptionEvent, len(q.events))
	for i, e := range q.events {
		out[i] = *e
	}
	return out
}

// eventStack é a visão de atividade recente (LIFO): o topo é o último evento empilhado.
type eventStack struct {
	events []*domain.ConsumptionEvent
}

func (s *eventStack) push(e *domain.ConsumptionEvent) { s.events = append(s.events, e) }

func (s *eventStack) len() int { return len(s.events) }

// top devolve o evento mais recente.
func (s *eventStack) top() (*domain.ConsumptionEvent, bool) {
	if len(s.events) == 0 {
		return nil, false
	}
	return s.events[len(s.events)-1], true
}

// snapshot devolve cópias lidas a partir do topo (mais recente primeiro).
func (s *eventStack) snapshot() []domain.ConsumptionEvent {
	out := make([]domain.ConsumptionEvent, len(s.events))
	for i := range s.events {
		out[i] = *s.events[len(s.events)-1-i]
	}
	return out
}
