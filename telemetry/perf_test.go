package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_TickPhases(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePlants)
		pc.StartPhase(PhasePrey)
		time.Sleep(2 * time.Millisecond)
		pc.StartPhase(PhasePredators)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, phase := range []string{PhasePlants, PhasePrey, PhasePredators} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("phase %q not tracked", phase)
		}
	}
	// Sleep only bounds from below, so only the lower bound is checked.
	if got := stats.PhaseAvg[PhasePrey]; got < 2*time.Millisecond {
		t.Errorf("prey phase avg = %v, want >= 2ms", got)
	}
	if stats.AvgTickDuration < stats.PhaseAvg[PhasePrey] {
		t.Errorf("tick avg %v below prey phase avg %v", stats.AvgTickDuration, stats.PhaseAvg[PhasePrey])
	}

	row := stats.ToCSV(42)
	if row.WindowEnd != 42 || row.PreyPct != stats.PhasePct[PhasePrey] {
		t.Errorf("ToCSV = %+v", row)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 12; i++ {
		pc.StartTick()
		pc.StartPhase(PhasePan)
		time.Sleep(20 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 || stats.TicksPerSecond <= 0 {
		t.Errorf("expected positive timing after window filled, got %+v", stats)
	}
	if stats.MinTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v above max %v", stats.MinTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("expected frame duration >= 15ms, got %v", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("FPS = %v, want in (0, 70]", stats.FPS)
	}
}
