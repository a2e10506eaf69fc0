package system

import (
	"github.com/milk9111/proteinrun/ecs"
)

// ToastSystem shows a random catalog toast every ToastEvery steps and
// schedules its dismissal on the run's timers.
type ToastSystem struct{}

func NewToastSystem() *ToastSystem {
	return &ToastSystem{}
}

func (s *ToastSystem) Update(w *ecs.World) {
	if w == nil || w.Config.ToastEvery <= 0 || len(w.Config.Toasts) == 0 {
		return
	}
	if w.Step%w.Config.ToastEvery != 0 {
		return
	}

	msg := w.Config.Toasts[w.Rand.IntN(len(w.Config.Toasts))]
	w.Toast = msg
	w.Timers.Cancel(w.ToastTimer)
	w.ToastTimer = w.Timers.After(w.Config.ToastDuration, func() {
		w.Toast = ""
		w.ToastTimer = 0
	})
	w.Emit(ecs.Event{Type: ecs.EventToast, Text: msg})
}
