package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// consumptionNamespace é o namespace dos UUIDs de eventos de consumo.
var consumptionNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("labstock.consumption"))

// ConsumptionEvent é o registro imutável de uma saída de estoque.
// O mesmo evento é referenciado pela fila (FIFO) e pela pilha (LIFO) do Store.
type ConsumptionEvent struct {
	ID        uuid.UUID `json:"id"`
	Seq       int       `json:"seq"` // Posição no histórico, a partir de 1
	Timestamp time.Time `json:"timestamp"`
	ItemID    int       `json:"item_id"`
	Quantity  int       `json:"quantity"`
}

// NewConsumptionEvent monta um evento com ID derivado dos seus próprios campos,
// de forma que execuções idênticas gerem IDs idênticos.
func NewConsumptionEvent(seq, itemID, quantity int, at time.Time) ConsumptionEvent {
	name := fmt.Sprintf("%d/%d/%d/%s", seq, itemID, quantity, at.Format(time.RFC3339Nano))
	return ConsumptionEvent{
		ID:        uuid.NewSHA1(consumptionNamespace, []byte(name)),
		Seq:       seq,
		Timestamp: at,
		ItemID:    itemID,
		Quantity:  quantity,
	}
}

// ShortID devolve os 8 primeiros caracteres do ID, suficientes para leitura humana.
func (e ConsumptionEvent) ShortID() string {
	return e.ID.String()[:8]
}

func (e ConsumptionEvent) String() string {
	return fmt.Sprintf("Consumo(#%d %s item=%d qtd=%d em %s)", e.Seq, e.ShortID(), e.ItemID, e.Quantity, e.Timestamp.Format("2006-01-02 15:04"))
}
