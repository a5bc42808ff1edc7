package game

import (
	"chosenoffset.com/outbreak/internal/assets"
	"chosenoffset.com/outbreak/internal/simulation"
	"chosenoffset.com/outbreak/internal/telemetry"
)

// Options carries the shared services a session is built from.
type Options struct {
	Config  *simulation.Config
	Assets  *assets.Loader     // optional; entities fall back to plain circles
	Metrics *telemetry.Metrics // optional
}

// config returns the session tuning, falling back to the defaults.
func (o Options) config() *simulation.Config {
	if o.Config == nil {
		return simulation.DefaultConfig()
	}
	return o.Config
}
