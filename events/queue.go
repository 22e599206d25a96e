package events

// EventQueue buffers events between the producer (controller) and the
// dispatch phase of the game loop
// Not safe for concurrent use: producer and consumer share the loop goroutine
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, 16)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
