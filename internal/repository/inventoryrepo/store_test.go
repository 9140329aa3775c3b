package inventoryrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock/internal/domain"
	apperror "labstock/internal/errors"
	"labstock/internal/repository/inventoryrepo"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestStore() *inventoryrepo.Store {
	return inventoryrepo.NewStore(inventoryrepo.WithClock(func() time.Time { return fixedNow }))
}

func newItem(name string, minStock, currentStock int) domain.NewItem {
	return domain.NewItem{
		Name:         name,
		Category:     domain.CategoryDisposable,
		Unit:         "cx",
		Lot:          "L001",
		Expiry:       fixedNow.AddDate(0, 0, 30),
		MinStock:     minStock,
		CurrentStock: currentStock,
	}
}

func TestCreateItem_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore()

	a := store.CreateItem(newItem("Luva Nitrílica M", 40, 120))
	b := store.CreateItem(newItem("Seringa 5ml", 35, 110))

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []int{1, 2}, []int{items[0].ID, items[1].ID})
	assert.Equal(t, 2, store.Len())

	got, ok := store.GetItem(2)
	require.True(t, ok)
	assert.Equal(t, "Seringa 5ml", got.Name)
	assert.Equal(t, domain.Date(fixedNow.AddDate(0, 0, 30)), got.Expiry, "a validade é guardada sem horário")

	_, ok = store.GetItem(3)
	assert.False(t, ok)
}

func TestCreateItem_AcceptsNegativeValues(t *testing.T) {
	store := newTestStore()

	item := store.CreateItem(newItem("Ponteira 200µL", -5, -1))

	assert.Equal(t, -5, item.MinStock)
	assert.Equal(t, -1, item.CurrentStock)
}

func TestRecordConsumption_DebitsStockAndAppendsToBothLogs(t *testing.T) {
	store := newTestStore()
	item := store.CreateItem(newItem("Swab Nasofaríngeo", 25, 100))

	err := store.RecordConsumption(item.ID, 30)
	require.NoError(t, err)

	got, _ := store.GetItem(item.ID)
	assert.Equal(t, 70, got.CurrentStock)

	fifo := store.ChronologicalLog()
	lifo := store.RecentLog()
	require.Len(t, fifo, 1)
	require.Len(t, lifo, 1)
	assert.Equal(t, fifo[0], lifo[0])
	assert.Equal(t, fixedNow, fifo[0].Timestamp)
	assert.Equal(t, item.ID, fifo[0].ItemID)
	assert.Equal(t, 30, fifo[0].Quantity)
	assert.Equal(t, 1, fifo[0].Seq)
}

func TestRecordConsumption_LogsStayInSync(t *testing.T) {
	store := newTestStore()
	a := store.CreateItem(newItem("Microtubo 1,5ml", 30, 100))
	b := store.CreateItem(newItem("Ponteira 1000µL", 40, 150))

	require.NoError(t, store.RecordConsumptionAt(a.ID, 1, fixedNow.Add(1*time.Hour)))
	require.NoError(t, store.RecordConsumptionAt(b.ID, 2, fixedNow.Add(2*time.Hour)))
	require.NoError(t, store.RecordConsumptionAt(a.ID, 3, fixedNow.Add(3*time.Hour)))

	fifo := store.ChronologicalLog()
	lifo := store.RecentLog()
	require.Len(t, fifo, 3)
	require.Len(t, lifo, 3)
	for i := range fifo {
		assert.Equal(t, fifo[i], lifo[len(lifo)-1-i])
	}

	oldest, ok := store.OldestEvent()
	require.True(t, ok)
	assert.Equal(t, 1, oldest.Quantity)
	latest, ok := store.LatestEvent()
	require.True(t, ok)
	assert.Equal(t, 3, latest.Quantity)
	assert.Equal(t, 3, store.EventCount())
}

func TestRecordConsumption_AllowsNegativeStock(t *testing.T) {
	store := newTestStore()
	item := store.CreateItem(newItem("Hemocultivo Aeróbio", 30, 10))

	require.NoError(t, store.RecordConsumption(item.ID, 25))

	got, _ := store.GetItem(item.ID)
	assert.Equal(t, -15, got.CurrentStock, "o estoque não é limitado em zero")
}

func TestRecordConsumption_Fail_NonPositiveQuantity(t *testing.T) {
	store := newTestStore()
	item := store.CreateItem(newItem("Kit PCR", 50, 140))

	for _, qty := range []int{0, -3} {
		err := store.RecordConsumption(item.ID, qty)

		assert.Error(t, err)
		assert.IsType(t, &apperror.ValidationError{}, err)
	}

	got, _ := store.GetItem(item.ID)
	assert.Equal(t, 140, got.CurrentStock)
	assert.Empty(t, store.ChronologicalLog())
	assert.Empty(t, store.RecentLog())
}

func TestRecordConsumption_Fail_UnknownItem(t *testing.T) {
	store := newTestStore()
	store.CreateItem(newItem("Kit PCR", 50, 140))

	err := store.RecordConsumption(99, 5)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ReferenceError{}, err)
	assert.Contains(t, err.Error(), "99")
	assert.Zero(t, store.EventCount())
}

func TestStore_EmptyLogs(t *testing.T) {
	store := newTestStore()

	_, ok := store.OldestEvent()
	assert.False(t, ok)
	_, ok = store.LatestEvent()
	assert.False(t, ok)
	assert.Empty(t, store.Items())
}

func TestItems_ReturnsCopies(t *testing.T) {
	store := newTestStore()
	store.CreateItem(newItem("Seringa 5ml", 35, 110))

	items := store.Items()
	items[0].CurrentStock = 0

	got, _ := store.GetItem(1)
	assert.Equal(t, 110, got.CurrentStock)
}
