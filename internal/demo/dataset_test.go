package demo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock/internal/demo"
	"labstock/internal/pkg/logger"
	"labstock/internal/repository/inventoryrepo"
	"labstock/internal/service/inventoryservice"
)

func TestSeed_LoadsTenItemsInOrder(t *testing.T) {
	today := time.Date(2026, 10, 19, 14, 45, 0, 0, time.UTC)
	store := inventoryrepo.NewStore()
	svc := inventoryservice.NewService(store, logger.NewNopLogger(), nil)

	items := demo.Seed(svc, today)

	require.Len(t, items, 10)
	assert.Equal(t, 10, store.Len())
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Soro Fisiológico 0,9%", items[0].Name)
	assert.Equal(t, 10, items[9].ID)
	assert.Equal(t, "Ponteira 1000µL", items[9].Name)
	assert.Equal(t, time.Date(2027, 2, 16, 0, 0, 0, 0, time.UTC), items[0].Expiry)
}
