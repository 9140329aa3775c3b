// Package simulator gera consumo sintético e reprodutível sobre o Store.
package simulator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
)

// Perfil de consumo por evento: reagentes saem em pequenas quantidades,
// os demais itens (descartáveis) em lotes maiores.
const (
	reagentMean   = 2.0
	reagentSpread = 1.0
	defaultMean   = 15.0
	defaultSpread = 6.0

	maxMinuteOffset = 60 * 10
)

// Recorder é o que o simulador precisa do Store.
type Recorder interface {
	Items() []domain.Item
	RecordConsumptionAt(itemID, quantity int, at time.Time) error
}

// Simulator gera eventos de consumo e os registra em um Recorder.
type Simulator struct {
	recorder Recorder
	now      func() time.Time
}

// Option configura um Simulator.
type Option func(*Simulator)

// WithClock fixa o instante de referência ("agora") da simulação.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New cria um Simulator sobre o Recorder informado.
func New(recorder Recorder, opts ...Option) *Simulator {
	s := &Simulator{recorder: recorder, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SimulateDays gera eventsPerDay consumos por dia durante days dias, começando days
// dias antes de agora. Cada chamada usa um gerador próprio semeado com seed, então a
// sequência é idêntica para a mesma semente, o mesmo relógio e os mesmos itens.
func (s *Simulator) SimulateDays(days, eventsPerDay int, seed uint64) error {
	if days < 0 || eventsPerDay < 0 {
		return apperror.NewValidationError(fmt.Sprintf("Dias e eventos por dia não podem ser negativos (dias=%d, eventos=%d).", days, eventsPerDay))
	}

	items := s.recorder.Items()
	if len(items) == 0 {
		return apperror.NewStateError("Sem itens no banco. Adicione antes de simular.")
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	base := s.now().AddDate(0, 0, -days)

	for d := 0; d < days; d++ {
		day := base.AddDate(0, 0, d)
		for range eventsPerDay {
			item := items[rng.IntN(len(items))]
			quantity := drawQuantity(rng, item.Category)
			at := day.Add(time.Duration(rng.IntN(maxMinuteOffset+1)) * time.Minute)

			if err := s.recorder.RecordConsumptionAt(item.ID, quantity, at); err != nil {
				return fmt.Errorf("falha ao registrar consumo simulado do item %d: %w", item.ID, err)
			}
		}
	}
	return nil
}

// drawQuantity sorteia a quantidade de um evento a partir de uma normal
// que depende da categoria, truncada para inteiro e limitada a no mínimo 1.
func drawQuantity(rng *rand.Rand, category string) int {
	mean, spread := defaultMean, defaultSpread
	if category == domain.CategoryReagent {
		mean, spread = reagentMean, reagentSpread
	}
	return max(1, int(rng.NormFloat64()*spread+mean))
}
