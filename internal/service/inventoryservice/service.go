package inventoryservice

import (
	"fmt"
	"strings"
	"time"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
	"labstock/internal/pkg/logger"
	"labstock/internal/pkg/metrics"
	"labstock/internal/report"
	"labstock/internal/search"
	"labstock/internal/simulator"
	"labstock/internal/sorting"
)

// InventoryStore define o contrato que o Serviço de Inventário espera do Store em memória.
type InventoryStore interface {
	CreateItem(req domain.NewItem) domain.Item
	GetItem(id int) (domain.Item, bool)
	Items() []domain.Item
	RecordConsumptionAt(itemID, quantity int, at time.Time) error
	ChronologicalLog() []domain.ConsumptionEvent
	RecentLog() []domain.ConsumptionEvent
}

// Service orquestra o Store, a simulação e os relatórios, adicionando logging e métricas.
// O núcleo (Store, busca, ordenação, relatórios) não faz log; isso fica aqui.
type Service struct {
	store   InventoryStore
	logger  logger.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

// Option configura o Service.
type Option func(*Service)

// WithClock substitui o relógio usado em registros sem horário e na simulação.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService cria e retorna uma nova instância do Serviço de Inventário.
func NewService(store InventoryStore, logger logger.Logger, m *metrics.Collector, opts ...Option) *Service {
	s := &Service{store: store, logger: logger, metrics: m, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem cadastra um item no Store.
func (s *Service) AddItem(req domain.NewItem) domain.Item {
	item := s.store.CreateItem(req)
	s.metrics.ObserveStock(item)
	s.logger.Debug("Item cadastrado.", map[string]interface{}{
		"item_id":  item.ID,
		"name":     item.Name,
		"category": item.Category,
		"stock":    item.CurrentStock,
	})
	return item
}

// GetItem busca um item pelo ID; um ID desconhecido resulta em ReferenceError.
func (s *Service) GetItem(id int) (domain.Item, error) {
	item, ok := s.store.GetItem(id)
	if !ok {
		return domain.Item{}, apperror.NewReferenceError(fmt.Sprintf("Item %d inexistente.", id))
	}
	return item, nil
}

// Items devolve todos os itens em ordem de cadastro.
func (s *Service) Items() []domain.Item { return s.store.Items() }

// RecordConsumption registra um consumo com o horário atual.
func (s *Service) RecordConsumption(itemID, quantity int) error {
	return s.RecordConsumptionAt(itemID, quantity, s.now())
}

// RecordConsumptionAt registra um consumo no horário informado.
// Também satisfaz simulator.Recorder, para que a simulação passe pelas métricas.
func (s *Service) RecordConsumptionAt(itemID, quantity int, at time.Time) error {
	if err := s.store.RecordConsumptionAt(itemID, quantity, at); err != nil {
		_, category, _ := apperror.MapToExitCode(err)
		s.metrics.ObserveRejection(category)
		s.logger.Warn("Consumo recusado.", map[string]interface{}{
			"item_id":  itemID,
			"quantity": quantity,
			"category": category,
			"error":    err.Error(),
		})
		return err
	}

	item, _ := s.store.GetItem(itemID)
	s.metrics.ObserveConsumption(item, quantity)
	s.logger.Debug("Consumo registrado.", map[string]interface{}{
		"item_id":   itemID,
		"quantity":  quantity,
		"new_stock": item.CurrentStock,
	})
	if item.CurrentStock < 0 {
		s.logger.Warn("Estoque negativo após consumo.", map[string]interface{}{
			"item_id": itemID,
			"stock":   item.CurrentStock,
		})
	}
	return nil
}

// SimulateDays gera consumo sintético reprodutível pela semente.
func (s *Service) SimulateDays(days, eventsPerDay int, seed uint64) error {
	s.logger.Info("Iniciando simulação de consumo.", map[string]interface{}{
		"days":           days,
		"events_per_day": eventsPerDay,
		"seed":           seed,
	})

	sim := simulator.New(s, simulator.WithClock(s.now))
	if err := sim.SimulateDays(days, eventsPerDay, seed); err != nil {
		if apperror.IsState(err) {
			s.logger.Warn("Simulação não executada.", map[string]interface{}{"reason": err.Error()})
			return err
		}
		s.logger.Error("Falha na simulação de consumo.", err)
		return err
	}

	s.logger.Info("Simulação concluída.", map[string]interface{}{"events": len(s.store.ChronologicalLog())})
	return nil
}

// Totals devolve o total consumido por item.
func (s *Service) Totals() map[int]int {
	return report.TotalConsumedPerItem(s.store)
}

// ConsumptionRanking devolve os itens em ordem crescente de consumo.
func (s *Service) ConsumptionRanking(method sorting.Method) ([]domain.ItemTotal, error) {
	ranked, err := report.ItemsRankedByConsumption(s.store, method)
	if err != nil {
		s.logger.Error("Falha ao ordenar itens por consumo.", err)
		return nil, err
	}
	return ranked, nil
}

// ExpiryRanking devolve os itens em ordem crescente de validade.
func (s *Service) ExpiryRanking(method sorting.Method) ([]domain.Item, error) {
	ranked, err := report.ItemsRankedByExpiry(s.store, method)
	if err != nil {
		s.logger.Error("Falha ao ordenar itens por validade.", err)
		return nil, err
	}
	return ranked, nil
}

// LowStockAlerts devolve os itens perto do estoque mínimo.
func (s *Service) LowStockAlerts(margin float64) []domain.Item {
	alerts := report.ItemsNearMinimum(s.store, margin)
	s.metrics.SetNearMinimum(len(alerts))
	if len(alerts) > 0 {
		s.logger.Info("Itens perto do estoque mínimo.", map[string]interface{}{"count": len(alerts), "margin": margin})
	}
	return alerts
}

// RecentActivity devolve os n consumos mais recentes.
func (s *Service) RecentActivity(n int) []domain.ConsumptionEvent {
	return report.RecentActivity(s.store, n)
}

// Summary resume a fila e a pilha de consumo.
func (s *Service) Summary() report.LogSummary {
	return report.Summary(s.store)
}

// FindByName faz busca binária pelo nome exato, sem diferenciar maiúsculas.
// A normalização do termo (trim, caixa) é responsabilidade de quem chama; aqui
// apenas o nome dos itens é convertido para minúsculas.
func (s *Service) FindByName(name string, method sorting.Method) (domain.Item, bool, error) {
	byName, err := sorting.Sort(method, s.store.Items(), domain.ItemNameFold)
	if err != nil {
		return domain.Item{}, false, err
	}
	idx := search.Binary(byName, name, domain.ItemNameFold)
	s.logger.Debug("Busca binária por nome.", map[string]interface{}{"term": name, "index": idx})
	if idx == search.NotFound {
		return domain.Item{}, false, nil
	}
	return byName[idx], true, nil
}

// FindByNameSequential faz busca sequencial pelo nome exato, na ordem de cadastro.
// Devolve também o índice encontrado (ou search.NotFound).
func (s *Service) FindByNameSequential(name string) (domain.Item, int) {
	items := s.store.Items()
	idx := search.Sequential(items, name, func(it domain.Item) string { return it.Name })
	if idx == search.NotFound {
		return domain.Item{}, idx
	}
	return items[idx], idx
}

// FindByExpiry faz busca binária pela data de validade sobre os itens ordenados por validade.
// Devolve a posição na lista ordenada, ou search.NotFound.
func (s *Service) FindByExpiry(expiry time.Time, method sorting.Method) (domain.Item, int, error) {
	byExpiry, err := sorting.Sort(method, s.store.Items(), domain.ItemExpiry)
	if err != nil {
		return domain.Item{}, search.NotFound, err
	}
	idx := search.Binary(byExpiry, domain.DateKey(expiry), domain.ItemExpiry)
	if idx == search.NotFound {
		return domain.Item{}, idx, nil
	}
	return byExpiry[idx], idx, nil
}

// NormalizeTerm prepara um termo digitado para a busca por nome.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
