// Command simulate plays headless runs with a simple bot and prints score
// statistics, for checking tuning changes without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"slices"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/prefabs"
	"github.com/milk9111/proteinrun/sim"
)

type stats struct {
	scores    []int
	collected []int
	pauses    int
}

func main() {
	runs := flag.Int("runs", 100, "number of runs to play")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	tuningFile := flag.String("tuning", "", "tuning file name in prefabs/ (default tuning.yaml)")
	idle := flag.Bool("idle", false, "never jump")
	flag.Parse()

	spec, err := prefabs.LoadTuningSpec(*tuningFile)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := prefabs.LoadMessageCatalog()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := ecs.ConfigFromSpec(spec, catalog)
	if err != nil {
		log.Fatal(err)
	}

	var st stats
	for i := 0; i < *runs; i++ {
		res, pauses, err := play(cfg, *seed+uint64(i), !*idle)
		if err != nil {
			log.Fatal(err)
		}
		st.scores = append(st.scores, res.Score)
		st.collected = append(st.collected, res.Collected)
		st.pauses += pauses
	}

	fmt.Printf("tuning: %s, %d runs of %d steps\n", spec.Name, *runs, cfg.RunSteps)
	fmt.Printf("score:     %s\n", summarize(st.scores))
	fmt.Printf("collected: %s\n", summarize(st.collected))
	fmt.Printf("info pauses per run: %.2f\n", float64(st.pauses)/float64(max(1, *runs)))
}

// play runs one game to completion, resuming every info pause at once.
func play(cfg ecs.Config, seed uint64, bot bool) (sim.Result, int, error) {
	var result sim.Result
	done := false
	run, err := sim.New(cfg,
		sim.WithRand(ecs.NewRand(seed)),
		sim.OnComplete(func(res sim.Result) {
			result = res
			done = true
		}),
	)
	if err != nil {
		return sim.Result{}, 0, err
	}
	defer run.Close()

	pauses := 0
	for !done {
		v := run.View()
		if v.Paused {
			pauses++
			run.Resume()
		} else if bot && shouldJump(v) {
			run.Jump()
		}
		run.Tick()
	}
	return result, pauses, nil
}

func summarize(values []int) string {
	if len(values) == 0 {
		return "n/a"
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sum := 0
	for _, v := range sorted {
		sum += v
	}
	return fmt.Sprintf("min %d  p50 %d  max %d  mean %.1f",
		sorted[0], sorted[len(sorted)/2], sorted[len(sorted)-1], float64(sum)/float64(len(sorted)))
}
