package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
	"github.com/milk9111/proteinrun/ecs/system"
	"pgregory.net/rapid"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testConfig() ecs.Config {
	cfg := ecs.DefaultConfig()
	cfg.PlayerY = cfg.Floor - cfg.PlayerHeight
	return cfg
}

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newTestRun(t fataler, cfg ecs.Config, opts ...Option) (*Run, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	base := []Option{WithRand(ecs.NewRand(42)), WithClock(clock)}
	r, err := New(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r, clock
}

// placeAtPlayer drops an entity that overlaps the grounded runner after
// one step of movement.
func placeAtPlayer(r *Run, kind component.Kind) {
	w := r.World()
	spec := w.Config.Kinds[kind]
	p := w.Player.Rect()
	w.Spawn(component.Entity{
		Kind:   kind,
		X:      p.X + w.Speed,
		Y:      p.Bottom() - spec.Height,
		Width:  spec.Width,
		Height: spec.Height,
		Points: spec.Points,
	})
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.BaseInterval = 0
	if _, err := New(cfg); !errors.Is(err, ecs.ErrSpawnInterval) {
		t.Fatalf("got %v; want ErrSpawnInterval", err)
	}

	cfg = testConfig()
	cfg.SpeedScript = "missing.tengo"
	if _, err := New(cfg); err == nil {
		t.Fatalf("missing speed script accepted")
	}
}

func TestNewWithScriptedSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.SpeedScript = "speed.tengo"
	r, _ := newTestRun(t, cfg)
	if v := r.View(); v.Speed != 5 {
		t.Fatalf("initial speed = %v; want 5", v.Speed)
	}
}

func TestHazardUnderStationaryPlayer(t *testing.T) {
	r, _ := newTestRun(t, testConfig())
	r.World().Spawn(component.Entity{Kind: component.KindNoise, X: 50, Y: 470, Width: 25, Height: 25, Points: -5})

	r.Tick()

	v := r.View()
	if v.Score != -5 {
		t.Fatalf("score = %d; want -5", v.Score)
	}
	for _, e := range v.Entities {
		if e.Kind == component.KindNoise {
			t.Fatalf("hazard still in field")
		}
	}
}

func TestMultiplierDoublesProtein(t *testing.T) {
	r, _ := newTestRun(t, testConfig())

	placeAtPlayer(r, component.KindBoost)
	r.Tick()
	if v := r.View(); v.PowerUp != component.PowerUpMultiplier {
		t.Fatalf("power-up = %v; want multiplier", v.PowerUp)
	}

	before := r.View().Score
	placeAtPlayer(r, component.KindProtein)
	r.Tick()
	if got := r.View().Score - before; got != 10 {
		t.Fatalf("protein under multiplier scored %d; want 10", got)
	}
}

func TestInfoPausesAndFreezes(t *testing.T) {
	r, _ := newTestRun(t, testConfig())
	placeAtPlayer(r, component.KindInfo)
	r.Tick()

	v := r.View()
	if !v.Paused || v.Info.Title == "" {
		t.Fatalf("paused=%v info=%+v", v.Paused, v.Info)
	}

	for i := 0; i < 50; i++ {
		r.Tick()
	}
	if after := r.View(); after.Step != v.Step || after.Score != v.Score {
		t.Fatalf("paused run advanced: step %d->%d score %d->%d", v.Step, after.Step, v.Score, after.Score)
	}

	if !r.Resume() {
		t.Fatalf("Resume refused")
	}
	if r.Resume() {
		t.Fatalf("Resume while running reported a change")
	}
	r.Tick()
	if got := r.View().Step; got != v.Step+1 {
		t.Fatalf("step after resume = %d; want %d", got, v.Step+1)
	}
}

func TestJumpIgnoredWhilePaused(t *testing.T) {
	r, _ := newTestRun(t, testConfig())
	placeAtPlayer(r, component.KindInfo)
	r.Tick()

	if r.Jump() {
		t.Fatalf("jump accepted while paused")
	}
	r.Resume()
	if !r.Jump() {
		t.Fatalf("grounded jump refused after resume")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, clock := newTestRun(t, testConfig())
		warmup := rapid.IntRange(0, 300).Draw(t, "warmup")
		for i := 0; i < warmup; i++ {
			r.Tick()
		}
		placeAtPlayer(r, component.KindInfo)
		r.Tick()
		if !r.View().Paused {
			t.Fatalf("info collision did not pause")
		}

		before := r.View()
		ticks := rapid.IntRange(1, 500).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			clock.Advance(16 * time.Millisecond)
			r.Jump()
			r.Tick()
		}
		after := r.View()

		if after.Step != before.Step || after.Score != before.Score || after.Collected != before.Collected {
			t.Fatalf("counters moved while paused: %+v -> %+v", before, after)
		}
		if after.Player != before.Player || len(after.Entities) != len(before.Entities) {
			t.Fatalf("field changed while paused")
		}
		for i := range before.Entities {
			if after.Entities[i].Rect != before.Entities[i].Rect {
				t.Fatalf("entity %d moved while paused", i)
			}
		}
		if !after.Paused || after.Info != before.Info {
			t.Fatalf("pause ended without resume")
		}
	})
}

func TestCompletionFiresOnce(t *testing.T) {
	cfg := testConfig()
	cfg.RunSteps = 240

	var results []Result
	r, _ := newTestRun(t, cfg, OnComplete(func(res Result) { results = append(results, res) }))

	var last ecs.View
	for i := 0; i < 1000; i++ {
		r.Resume()
		r.Tick()
		if !r.Done() {
			continue
		}
		if last.Step == 0 {
			last = r.View()
		}
	}

	if len(results) != 1 {
		t.Fatalf("OnComplete fired %d times", len(results))
	}
	if last.Step != cfg.RunSteps {
		t.Fatalf("finished at step %d; want %d", last.Step, cfg.RunSteps)
	}
	if results[0].Score != last.Score || results[0].Collected != last.Collected {
		t.Fatalf("result %+v; view at end %d/%d", results[0], last.Score, last.Collected)
	}
	if r.Resume() || r.Jump() {
		t.Fatalf("finished run accepted input")
	}
}

func TestCompletionCarriesFinalStepValues(t *testing.T) {
	cfg := testConfig()
	cfg.RunSteps = 1

	var got Result
	r, _ := newTestRun(t, cfg, OnComplete(func(res Result) { got = res }))
	placeAtPlayer(r, component.KindMassSpec)
	r.Tick()

	if got.Score != 10 || got.Collected != 1 {
		t.Fatalf("result = %+v; want the terminating step's pickup", got)
	}
}

func TestCloseStopsEverything(t *testing.T) {
	cfg := testConfig()
	cfg.ToastEvery = 1
	cfg.RunSteps = 5

	fired := 0
	r, clock := newTestRun(t, cfg, OnComplete(func(Result) { fired++ }))
	r.Tick()
	if r.View().Toast == "" {
		t.Fatalf("no toast on step 1")
	}

	r.Close()
	r.Close()
	if pending := r.World().Timers.Pending(); pending != 0 {
		t.Fatalf("pending timers after Close: %d", pending)
	}

	clock.Advance(time.Minute)
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	v := r.View()
	if v.Step != 1 || fired != 0 {
		t.Fatalf("closed run stepped to %d, completion fired %d", v.Step, fired)
	}
	if v.Toast == "" {
		t.Fatalf("dismissal fired after Close")
	}
}

func TestEventsDrained(t *testing.T) {
	r, _ := newTestRun(t, testConfig(), WithSpeedCurve(system.RampCurve{Initial: 5, Every: 500, Step: 0.5}))
	placeAtPlayer(r, component.KindPeptide)
	r.Tick()

	events := r.DrainEvents()
	found := false
	for _, evt := range events {
		if evt.Type == ecs.EventCollected && evt.Points == 3 && evt.Step == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no collected event in %+v", events)
	}
	if len(r.DrainEvents()) != 0 {
		t.Fatalf("events not cleared")
	}
}

type constCurve float64

func (c constCurve) Speed(int) (float64, error) { return float64(c), nil }

func TestCrawlingSpeedSpawnsNothing(t *testing.T) {
	r, _ := newTestRun(t, testConfig(), WithSpeedCurve(constCurve(1e-300)))
	if got := r.World().SpawnInterval(); got != ecs.MaxSpawnInterval {
		t.Fatalf("spawn interval = %d; want %d", got, ecs.MaxSpawnInterval)
	}
	for i := 0; i < 200; i++ {
		r.Tick()
	}
	if n := len(r.View().Entities); n != 0 {
		t.Fatalf("%d entities spawned at a crawl", n)
	}
}

func TestSpeedRampAppliesAfterBoundary(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnTable = component.SpawnTable{{Upper: 1, Kind: component.KindPeptide}}
	r, _ := newTestRun(t, cfg, WithSpeedCurve(system.RampCurve{Initial: 5, Every: 500, Step: 0.5}))

	for i := 0; i < 500; i++ {
		r.Tick()
	}
	if v := r.View(); v.Step != 500 || v.Speed != 5 {
		t.Fatalf("step %d speed %v; want step 500 at 5", v.Step, v.Speed)
	}
	r.Tick()
	if v := r.View(); v.Step != 501 || v.Speed != 5.5 {
		t.Fatalf("step %d speed %v; want step 501 at 5.5", v.Step, v.Speed)
	}
}
