package main

import (
	"fmt"
	"log"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/prefabs"
)

// tuning is the configuration the next run starts with, plus the catalog
// the host screens read.
type tuning struct {
	file    string
	cfg     ecs.Config
	catalog *prefabs.MessageCatalog
	watcher *prefabs.Watcher
}

func loadTuning(file string) (*tuning, error) {
	t := &tuning{file: file}
	if err := t.reload(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *tuning) reload() error {
	spec, err := prefabs.LoadTuningSpec(t.file)
	if err != nil {
		return err
	}
	catalog, err := prefabs.LoadMessageCatalog()
	if err != nil {
		return err
	}
	cfg, err := ecs.ConfigFromSpec(spec, catalog)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", spec.Name, err)
	}
	t.cfg = cfg
	t.catalog = catalog
	return nil
}

// watch starts hot reload of the prefabs directory.
func (t *tuning) watch() {
	w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.ScriptsDir)
	if err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
		return
	}
	t.watcher = w
}

// poll applies pending reloads. A broken file keeps the previous tuning.
func (t *tuning) poll() {
	if t.watcher == nil {
		return
	}
	select {
	case err, ok := <-t.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}
	changed := t.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	if err := t.reload(); err != nil {
		log.Printf("prefabs: reload after %v failed, keeping previous tuning: %v", changed, err)
		return
	}
	log.Printf("prefabs: reloaded after %v; applies to the next run", changed)
}

func (t *tuning) close() {
	if t.watcher != nil {
		_ = t.watcher.Close()
	}
}
