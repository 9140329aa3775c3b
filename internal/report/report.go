// Package report agrega o histórico de consumo e produz visões ordenadas e filtradas
// do estoque usando as rotinas genéricas de ordenação.
package report

import (
	"math"

	"labstock/internal/domain"
	"labstock/internal/sorting"
)

// Source é a visão somente leitura do Store usada pelos relatórios.
type Source interface {
	Items() []domain.Item
	ChronologicalLog() []domain.ConsumptionEvent
	RecentLog() []domain.ConsumptionEvent
}

// LogSummary resume os dois históricos: tamanho, frente da fila e topo da pilha.
type LogSummary struct {
	EventCount int
	First      *domain.ConsumptionEvent
	Latest     *domain.ConsumptionEvent
}

// TotalConsumedPerItem soma as quantidades consumidas por item.
// Todo item cadastrado aparece no resultado, com zero se nunca foi consumido.
func TotalConsumedPerItem(src Source) map[int]int {
	items := src.Items()
	totals := make(map[int]int, len(items))
	for _, it := range items {
		totals[it.ID] = 0
	}
	for _, evt := range src.ChronologicalLog() {
		totals[evt.ItemID] += evt.Quantity
	}
	return totals
}

// ItemsRankedByConsumption devolve os itens com seus totais em ordem crescente de
// consumo; os maiores consumidores ficam no fim.
func ItemsRankedByConsumption(src Source, method sorting.Method) ([]domain.ItemTotal, error) {
	totals := TotalConsumedPerItem(src)
	items := src.Items()

	pairs := make([]domain.ItemTotal, len(items))
	for i, it := range items {
		pairs[i] = domain.ItemTotal{Item: it, Total: totals[it.ID]}
	}
	return sorting.Sort(method, pairs, domain.ItemTotalKey)
}

// ItemsRankedByExpiry devolve os itens em ordem crescente de validade.
func ItemsRankedByExpiry(src Source, method sorting.Method) ([]domain.Item, error) {
	return sorting.Sort(method, src.Items(), domain.ItemExpiry)
}

// ItemsNearMinimum devolve, na ordem de cadastro, os itens cujo estoque atual está
// no máximo em floor(mínimo * (1 + margin)).
func ItemsNearMinimum(src Source, margin float64) []domain.Item {
	var out []domain.Item
	for _, it := range src.Items() {
		threshold := int(math.Floor(float64(it.MinStock) * (1 + margin)))
		if it.CurrentStock <= threshold {
			out = append(out, it)
		}
	}
	return out
}

// RecentActivity devolve até n eventos a partir do mais recente.
// n <= 0 devolve o histórico inteiro.
func RecentActivity(src Source, n int) []domain.ConsumptionEvent {
	recent := src.RecentLog()
	if n > 0 && n < len(recent) {
		recent = recent[:n]
	}
	return recent
}

// Summary monta o resumo dos históricos.
func Summary(src Source) LogSummary {
	fifo := src.ChronologicalLog()
	lifo := src.RecentLog()

	summary := LogSummary{EventCount: len(fifo)}
	if len(fifo) > 0 {
		summary.First = &fifo[0]
	}
	if len(lifo) > 0 {
		summary.Latest = &lifo[0]
	}
	return summary
}
