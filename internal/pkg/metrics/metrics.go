// Package metrics expõe contadores e medidores Prometheus do almoxarifado em um
// registro próprio, sem servidor HTTP: o registro é lido em processo e pode ser
// impresso no formato texto de exposição.
package metrics

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"labstock/internal/domain"
)

const namespace = "labstock"

// Collector agrupa as métricas do inventário.
// Um Collector nil é válido e ignora todas as observações.
type Collector struct {
	registry *prometheus.Registry

	events      *prometheus.CounterVec
	units       *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	stock       *prometheus.GaugeVec
	nearMinimum prometheus.Gauge
}

// New cria um Collector com um registro Prometheus isolado.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumption_events_total",
			Help:      "Eventos de consumo registrados, por categoria de item.",
		}, []string{"category"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumed_units_total",
			Help:      "Unidades consumidas, por categoria de item.",
		}, []string{"category"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consumption_rejected_total",
			Help:      "Registros de consumo recusados, por categoria de erro.",
		}, []string{"reason"}),
		stock: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "item_stock",
			Help:      "Estoque atual por item.",
		}, []string{"item_id", "unit"}),
		nearMinimum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_near_minimum",
			Help:      "Itens no último relatório de alerta de estoque mínimo.",
		}),
	}
	c.registry.MustRegister(c.events, c.units, c.rejected, c.stock, c.nearMinimum)
	return c
}

// Registry devolve o registro Prometheus do Collector.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveStock atualiza o medidor de estoque do item.
func (c *Collector) ObserveStock(item domain.Item) {
	if c == nil {
		return
	}
	c.stock.WithLabelValues(strconv.Itoa(item.ID), item.Unit).Set(float64(item.CurrentStock))
}

// ObserveConsumption contabiliza um consumo aceito; item já deve refletir o débito.
func (c *Collector) ObserveConsumption(item domain.Item, quantity int) {
	if c == nil {
		return
	}
	c.events.WithLabelValues(item.Category).Inc()
	c.units.WithLabelValues(item.Category).Add(float64(quantity))
	c.ObserveStock(item)
}

// ObserveRejection contabiliza um consumo recusado.
func (c *Collector) ObserveRejection(reason string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(reason).Inc()
}

// SetNearMinimum registra quantos itens estão perto do mínimo.
func (c *Collector) SetNearMinimum(n int) {
	if c == nil {
		return
	}
	c.nearMinimum.Set(float64(n))
}

// WriteText escreve todas as métricas no formato texto de exposição.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil {
		return nil
	}
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
