package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventNavigate asks the scroll controller to move to a section anchor.
	// Data is a NavigateEvent.
	EventNavigate = "navigate"
	// EventContact is emitted when the contact button is clicked.
	EventContact = "contact"
)

// NavigateEvent names the anchor to scroll to.
type NavigateEvent struct {
	Anchor string
}

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

// Peek returns pending events of the given type without removing them.
func (q *EventQueue) Peek(typ string) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
