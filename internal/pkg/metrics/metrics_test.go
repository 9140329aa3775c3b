package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstock/internal/domain"
	"labstock/internal/pkg/metrics"
)

func TestCollector_ObserveConsumption(t *testing.T) {
	c := metrics.New()
	item := domain.Item{ID: 4, Category: domain.CategoryDisposable, Unit: "cx", CurrentStock: 105}

	c.ObserveConsumption(item, 15)
	c.ObserveConsumption(item, 5)

	count, err := testutil.GatherAndCount(c.Registry(), "labstock_consumption_events_total", "labstock_item_stock")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := c.Registry().Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["labstock_consumption_events_total"])
	assert.Equal(t, 20.0, values["labstock_consumed_units_total"])
	assert.Equal(t, 105.0, values["labstock_item_stock"])
}

func TestCollector_RejectionsAndAlerts(t *testing.T) {
	c := metrics.New()

	c.ObserveRejection("VALIDATION_ERROR")
	c.ObserveRejection("VALIDATION_ERROR")
	c.SetNearMinimum(3)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, `labstock_consumption_rejected_total{reason="VALIDATION_ERROR"} 2`)
	assert.Contains(t, out, "labstock_items_near_minimum 3")
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *metrics.Collector

	assert.NotPanics(t, func() {
		c.ObserveConsumption(domain.Item{ID: 1}, 1)
		c.ObserveRejection("STATE_ERROR")
		c.SetNearMinimum(1)
		assert.NoError(t, c.WriteText(&bytes.Buffer{}))
	})
}
