package domain

import (
	"cmp"
	"strings"
	"time"
)

// KeyFunc projeta uma entidade em uma chave totalmente ordenável.
// Todas as rotinas de busca e ordenação recebem uma KeyFunc e não assumem
// nada sobre a forma da entidade além dessa projeção.
type KeyFunc[T any, K cmp.Ordered] func(T) K

// DateKey converte uma data em dias desde a época Unix, ignorando o horário.
func DateKey(t time.Time) int64 {
	return Date(t).Unix() / 86400
}

// ItemNameFold usa o nome em minúsculas como chave.
func ItemNameFold(it Item) string { return strings.ToLower(it.Name) }

// ItemExpiry usa a data de validade como chave.
func ItemExpiry(it Item) int64 { return DateKey(it.Expiry) }

// ItemTotalKey ordena pares (item, total) pelo total consumido.
func ItemTotalKey(p ItemTotal) int { return p.Total }
