package system

import (
	"time"

	"go.uber.org/zap"
)

// tickStats logs a population summary every stats_every ticks.
func tickStats(deps *Deps) func(time.Duration) {
	every := deps.Sim.StatsEvery
	if every <= 0 {
		every = 50
	}
	return func(_ time.Duration) {
		ws := deps.World
		if ws.Tick == 0 || ws.Tick%int64(every) != 0 {
			return
		}
		deps.Log.Info("reef status",
			zap.Int64("tick", ws.Tick),
			zap.Int("population", ws.Population()),
			zap.Int64("births", ws.Births),
			zap.Int64("deaths", ws.Deaths))
	}
}
