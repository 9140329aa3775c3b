package domain

import (
	"time"
)

// Categorias reconhecidas pelo simulador. O campo Category é texto livre;
// apenas estes valores alteram o perfil de consumo simulado.
const (
	CategoryReagent    = "reagente"
	CategoryDisposable = "descartável"
)

// Item representa uma unidade de estoque do almoxarifado (reagente, descartável...).
// É criado apenas pelo Store, nunca removido, e só muda via registro de consumo.
type Item struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"` // Ex: "ml", "un", "cx"
	Lot          string    `json:"lot"`
	Expiry       time.Time `json:"expiry"` // Data de validade (meia-noite UTC, sem hora)
	MinStock     int       `json:"min_stock"`
	CurrentStock int       `json:"current_stock"` // Pode ficar negativo em caso de consumo excessivo
}

// NewItem é o payload esperado para o cadastro de um item.
type NewItem struct {
	Name         string
	Category     string
	Unit         string
	Lot          string
	Expiry       time.Time
	MinStock     int
	CurrentStock int
}

// ItemTotal associa um item ao total consumido no histórico.
type ItemTotal struct {
	Item  Item `json:"item"`
	Total int  `json:"total"`
}

// Date normaliza um instante para a data civil correspondente (meia-noite UTC).
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
