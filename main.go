package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot reload, event log)")
	seed := flag.Uint64("seed", 0, "seed the run RNG for a deterministic game (0 = random)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningFile := flag.String("tuning", "", "tuning file name in prefabs/ (default tuning.yaml)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(960, 600)
	ebiten.SetWindowTitle("Protein Run")
	// the renderer fades the previous frame for motion trails
	ebiten.SetScreenClearedEveryFrame(false)

	game, err := NewGame(gameOptions{debug: *debug, seed: *seed, tuning: *tuningFile})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
