package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"labstock/internal/domain"
)

func TestNewConsumptionEvent_IDIsDerivedFromFields(t *testing.T) {
	at := time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC)

	a := domain.NewConsumptionEvent(1, 3, 5, at)
	b := domain.NewConsumptionEvent(1, 3, 5, at)
	c := domain.NewConsumptionEvent(2, 3, 5, at)

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, uuid.Version(5), a.ID.Version())
}

func TestConsumptionEvent_StringShowsShortID(t *testing.T) {
	evt := domain.NewConsumptionEvent(7, 2, 4, time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC))

	text := evt.String()

	assert.Len(t, evt.ShortID(), 8)
	assert.Contains(t, text, "#7 "+evt.ShortID())
	assert.Contains(t, text, "item=2 qtd=4 em 2026-10-12 09:30")
}
