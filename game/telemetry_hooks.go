package game

import (
	"log/slog"
)

// flushTelemetry closes the stats window once it is full and hands the
// result to the callback, the log and the CSV output.
func (g *Game) flushTelemetry() {
	collector := g.aq.Collector()
	tick := g.aq.TickCount()
	if !collector.ShouldFlush(tick) {
		return
	}

	stats := collector.Flush(tick, g.aq.Census())
	perfStats := g.aq.Perf().Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	if stats.Extinct() && g.logStats {
		slog.Warn("population extinct",
			"tick", tick,
			"prey", stats.Prey,
			"predators", stats.Predators,
		)
	}
}
