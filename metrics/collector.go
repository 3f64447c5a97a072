/*
Package metrics exposes reward pool notifications as prometheus metrics.
*/
package metrics

import (
	"net/http"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/x/rewardpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "beehive"

// Collector tracks reward pool activity. It is a rewardpool.Observer.
type Collector struct {
	events           *prometheus.CounterVec
	deposited        prometheus.Counter
	distributed      prometheus.Counter
	balance          prometheus.Gauge
	totalDistributed prometheus.Gauge
	paused           prometheus.Gauge
}

var _ rewardpool.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "events_total",
			Help:      "Count of successful reward pool operations by kind.",
		}, []string{"kind"}),
		deposited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "deposited_total",
			Help:      "Sum of all deposits into the pool.",
		}),
		distributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "distributed_total",
			Help:      "Sum of all distributions observed by this process.",
		}),
		balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "balance",
			Help:      "Pool balance after the last deposit or distribution.",
		}),
		totalDistributed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "total_distributed",
			Help:      "Total distributed as recorded on chain.",
		}),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rewardpool",
			Name:      "paused",
			Help:      "1 while distribution is paused.",
		}),
	}
	for _, m := range []prometheus.Collector{c.events, c.deposited, c.distributed, c.balance, c.totalDistributed, c.paused} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Notify updates the metrics for the event.
func (c *Collector) Notify(ctx beehive.Context, ev rewardpool.Event) error {
	c.events.WithLabelValues(string(ev.Kind)).Inc()
	switch ev.Kind {
	case rewardpool.EventDeposited:
		c.deposited.Add(float64(ev.Amount))
		c.balance.Set(float64(ev.Balance))
	case rewardpool.EventDistributed:
		c.distributed.Add(float64(ev.Amount))
		c.balance.Set(float64(ev.Balance))
		c.totalDistributed.Set(float64(ev.TotalDistributed))
	case rewardpool.EventPaused:
		c.paused.Set(1)
	case rewardpool.EventUnpaused:
		c.paused.Set(0)
	}
	return nil
}

// Handler serves the metrics gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
