package telemetry

import (
	"math/rand"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/outbreak/internal/core/geom"
	"chosenoffset.com/outbreak/internal/entity"
	"chosenoffset.com/outbreak/internal/simulation"
)

func TestInstrumentCountsWorldEvents(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Knockback.Apply = false
	w := simulation.NewEmptyWorld(cfg, rand.New(rand.NewSource(1)))
	z := w.SpawnZombie(geom.V(652, 360))
	z.Health = 20
	w.SpawnNPC(geom.V(740, 360), false)

	var deaths []entity.ID
	w.OnEntityDeath = func(e *entity.Entity) { deaths = append(deaths, e.ID) }

	m := NewMetrics()
	m.Instrument(w)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.liveEntities))

	for i := 0; i < 3; i++ {
		start := time.Now()
		w.Tick(1.0/60, simulation.Intent{Shockwave: true})
		m.ObserveTick(time.Since(start))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ticks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shockwaves))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deaths.WithLabelValues("zombie")))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.damage.WithLabelValues("zombie")), "shockwave then assist")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reveals.WithLabelValues("friendly")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.liveEntities))
	assert.Equal(t, []entity.ID{z.ID}, deaths, "existing callbacks still run")
}

func TestRegistryGathers(t *testing.T) {
	m := NewMetrics()
	m.ObserveTick(time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "outbreak_ticks_total")
	assert.Contains(t, names, "outbreak_tick_duration_seconds")
}
