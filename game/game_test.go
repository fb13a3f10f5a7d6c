package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func headlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	opts.Config = cfg
	opts.Headless = true
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	g := NewGameWithOptions(opts)
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessStatsWindows(t *testing.T) {
	var windows []telemetry.WindowStats
	g := headlessGame(t, Options{
		StatsWindowTicks: 10,
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})

	for i := 0; i < 30; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 30 {
		t.Fatalf("Tick() = %d, want 30", g.Tick())
	}
	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}
	if windows[0].PreySpawns != 100 || windows[0].PredSpawns != 1 || windows[0].PlantSpawns != 20 {
		t.Errorf("first window spawns = %d/%d/%d, want 20/100/1",
			windows[0].PlantSpawns, windows[0].PreySpawns, windows[0].PredSpawns)
	}
	for i, w := range windows {
		if w.WindowEndTick != int32(10*(i+1)) {
			t.Errorf("window %d ends at %d, want %d", i, w.WindowEndTick, 10*(i+1))
		}
	}
}

func TestStepsPerUpdate(t *testing.T) {
	g := headlessGame(t, Options{StepsPerUpdate: 4})
	g.UpdateHeadless()
	g.UpdateHeadless()
	if g.Tick() != 8 {
		t.Errorf("Tick() = %d, want 8", g.Tick())
	}
}

func TestSameSeedSameRun(t *testing.T) {
	a := headlessGame(t, Options{Seed: 99})
	b := headlessGame(t, Options{Seed: 99})
	for i := 0; i < 50; i++ {
		a.UpdateHeadless()
		b.UpdateHeadless()
	}

	pa, pb := a.Aquarium().Preys(), b.Aquarium().Preys()
	if len(pa) != len(pb) {
		t.Fatalf("prey counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Position != pb[i].Position {
			t.Fatalf("prey %d at %v vs %v", i, pa[i].Position, pb[i].Position)
		}
	}
}

func TestOutputDir(t *testing.T) {
	dir := t.TempDir()
	g := headlessGame(t, Options{StatsWindowTicks: 5, OutputDir: dir})
	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"telemetry.csv", "perf.csv", "config.yaml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
