// Package telemetry exports simulation metrics to Prometheus.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/simulation"
)

const namespace = "outbreak"

// Metrics holds the simulation collectors on their own registry.
type Metrics struct {
	registry *prometheus.Registry

	sessions     prometheus.Counter
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	deaths       *prometheus.CounterVec
	damage       *prometheus.CounterVec
	reveals      *prometheus.CounterVec
	shockwaves   prometheus.Counter
	liveEntities prometheus.Gauge
}

// NewMetrics creates and registers the simulation collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Play sessions started.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one simulation tick.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deaths_total",
			Help:      "Entities killed, by kind.",
		}, []string{"kind"}),
		damage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_total",
			Help:      "Damage applied, by target kind.",
		}, []string{"kind"}),
		reveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "npc_reveals_total",
			Help:      "NPC reveals, by revealed nature.",
		}, []string{"nature"}),
		shockwaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shockwaves_total",
			Help:      "Shockwaves emitted by the player.",
		}),
		liveEntities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_entities",
			Help:      "Entities alive in the current session, player included.",
		}),
	}

	m.registry.MustRegister(m.sessions, m.ticks, m.tickDuration, m.deaths,
		m.damage, m.reveals, m.shockwaves, m.liveEntities)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Instrument hooks the metrics into the callbacks of w, keeping any
// callbacks already set.
func (m *Metrics) Instrument(w *simulation.World) {
	m.sessions.Inc()
	m.liveEntities.Set(float64(countAlive(w)))

	prevDamage := w.OnDamage
	w.OnDamage = func(target *entity.Entity, amount float64) {
		m.damage.WithLabelValues(target.Kind.String()).Add(amount)
		if prevDamage != nil {
			prevDamage(target, amount)
		}
	}

	prevDeath := w.OnEntityDeath
	w.OnEntityDeath = func(e *entity.Entity) {
		m.deaths.WithLabelValues(e.Kind.String()).Inc()
		m.liveEntities.Dec()
		if prevDeath != nil {
			prevDeath(e)
		}
	}

	prevReveal := w.OnReveal
	w.OnReveal = func(e *entity.Entity) {
		nature := "friendly"
		if e.Hostile {
			nature = "hostile"
		}
		m.reveals.WithLabelValues(nature).Inc()
		if prevReveal != nil {
			prevReveal(e)
		}
	}

	prevShockwave := w.OnShockwave
	w.OnShockwave = func(s *entity.Shockwave) {
		m.shockwaves.Inc()
		if prevShockwave != nil {
			prevShockwave(s)
		}
	}
}

// ObserveTick records one tick that took d of wall time.
func (m *Metrics) ObserveTick(d time.Duration) {
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Metrics available at http://%s/metrics", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}
		return nil
	}
}

func countAlive(w *simulation.World) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Alive() {
			n++
		}
	}
	return n
}
