package ecs

// Event is a world notification for the host.
type Event struct {
	Type string
	Data any
}

const (
	// EventUIRefresh is pushed when a resource the HUD shows has changed.
	EventUIRefresh = "ui_refresh"
	// EventPlayerDied is pushed once health reaches zero.
	EventPlayerDied = "player_died"
	// EventMapLoaded carries the path of the map that was just loaded.
	EventMapLoaded = "map_loaded"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
