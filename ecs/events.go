package ecs

import "github.com/milk9111/proteinrun/ecs/component"

type EventType int

const (
	EventSpawned EventType = iota
	EventCollected
	EventHazard
	EventPowerUp
	EventPowerUpExpired
	EventInfo
	EventResumed
	EventToast
	EventComplete
)

func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventCollected:
		return "collected"
	case EventHazard:
		return "hazard"
	case EventPowerUp:
		return "power_up"
	case EventPowerUpExpired:
		return "power_up_expired"
	case EventInfo:
		return "info"
	case EventResumed:
		return "resumed"
	case EventToast:
		return "toast"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Event describes something the presentation layer may want to react to.
// X and Y are the center of the entity involved, when there is one.
type Event struct {
	Type   EventType
	Step   int
	Kind   component.Kind
	Points int
	X      float64
	Y      float64
	Text   string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
